package main

import (
	"fmt"
	"os"

	"github.com/hl7bridge/hl7v2/segments"
	"github.com/hl7bridge/hl7v2/validate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse an HL7 message and report structural validation errors.",
	Long: `Parse an HL7 message and run it through structural validation: MSH
presence, registry-known segment IDs, and required fields. Paired-segment
balance is not checked.

Exits 1 if validation finds any errors.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(cmd, args[0])
		if err != nil {
			fatal(err)
		}

		msg, err := readAll(data, readerOpts(cmd))
		if err != nil {
			fatal(fmt.Errorf("hl7tool: validate: %w", err))
		}

		v := validate.New(segments.Registry())
		result := v.Validate(msg)

		if result.Valid() {
			fmt.Println("OK")
			return
		}

		for _, ve := range result.Errors() {
			fmt.Fprintln(os.Stderr, ve)
		}
		os.Exit(1)
	},
}
