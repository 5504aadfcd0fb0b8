package main

import (
	"fmt"
	"os"

	"github.com/hl7bridge/hl7v2/mllp"
	"github.com/hl7bridge/hl7v2/writer"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "Parse an HL7 message and re-encode it to wire bytes on stdout.",
	Long: `Parse an HL7 message and re-encode it to wire bytes on stdout.

Useful for normalizing separators/trim policy. --dialect selects the wire
(CR-terminated) or text (LF-terminated) terminator for both reading and
writing, so the output keeps the input's dialect; it does not convert
between them.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(cmd, args[0])
		if err != nil {
			fatal(err)
		}

		msg, err := readAll(data, readerOpts(cmd))
		if err != nil {
			fatal(fmt.Errorf("hl7tool: encode: %w", err))
		}

		out, err := writer.Write(msg, writerOpts(cmd))
		if err != nil {
			fatal(fmt.Errorf("hl7tool: encode: %w", err))
		}

		if GetFlag(cmd, "frame") {
			out = mllp.ToMLLP(out)
		}
		os.Stdout.Write(out)
	},
}

func init() {
	encodeCmd.Flags().Bool("frame", false, "wrap the re-encoded output in MLLP framing")
}
