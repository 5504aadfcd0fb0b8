package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hl7tool",
	Short: "Read, write, validate and frame HL7 v2.x messages.",
	Long:  "hl7tool is a small CLI over the hl7v2 module's reader, writer, validate and mllp packages.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetFlag gets an expected bool flag, or exits if it isn't registered.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

// GetString gets an expected string flag, or exits if it isn't registered.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("dialect", "wire", "segment terminator dialect: wire (CR) or text (LF)")
	rootCmd.PersistentFlags().Bool("trim", true, "trim trailing empty positions on read and write")
	rootCmd.PersistentFlags().Bool("mllp", false, "input is MLLP-framed (output framing is encode's --frame)")

	rootCmd.AddCommand(parseCmd, encodeCmd, validateCmd, frameCmd, unframeCmd)
}
