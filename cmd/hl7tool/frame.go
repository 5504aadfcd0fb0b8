package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hl7bridge/hl7v2/mllp"
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame <file>",
	Short: "Wrap raw bytes in MLLP start/end block framing.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := rawInput(args[0])
		if err != nil {
			fatal(err)
		}
		os.Stdout.Write(mllp.ToMLLP(data))
	},
}

var unframeCmd = &cobra.Command{
	Use:   "unframe <file>",
	Short: "Strip MLLP start/end block framing from raw bytes.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := rawInput(args[0])
		if err != nil {
			fatal(err)
		}

		inner, incomplete, err := mllp.FromMLLP(data)
		if err != nil {
			fatal(fmt.Errorf("hl7tool: unframe: %w", err))
		}
		if incomplete {
			fatal(fmt.Errorf("hl7tool: unframe: incomplete MLLP frame"))
		}
		os.Stdout.Write(inner)
	},
}

// rawInput reads path (or stdin, for "-") without any MLLP or HL7 parsing,
// for use by frame/unframe which operate on raw bytes directly.
func rawInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hl7tool: reading %s: %w", path, err)
	}
	return data, nil
}
