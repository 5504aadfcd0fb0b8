package main

import (
	"fmt"
	"sort"

	"github.com/hl7bridge/hl7v2/message"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an HL7 message and print its segments and field values.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(cmd, args[0])
		if err != nil {
			fatal(err)
		}

		msg, err := readAll(data, readerOpts(cmd))
		if err != nil {
			fatal(fmt.Errorf("hl7tool: parse: %w", err))
		}

		printMessage(msg)
	},
}

func printMessage(msg message.Message) {
	for i, seg := range msg.Segments() {
		fmt.Printf("%d: %s\n", i, seg.ID)

		names := make([]string, 0, len(seg.Values))
		for name := range seg.Values {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			vals := seg.Values[name]
			if len(vals) == 1 {
				if v := vals[0]; !v.IsEmpty() {
					fmt.Printf("    %s = %s\n", name, valueString(v))
				}
				continue
			}
			for rep, v := range vals {
				if !v.IsEmpty() {
					fmt.Printf("    %s[%d] = %s\n", name, rep, valueString(v))
				}
			}
		}
	}
	log.Debugf("parsed %d segments", msg.Len())
}
