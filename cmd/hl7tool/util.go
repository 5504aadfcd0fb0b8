package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hl7bridge/hl7v2/delim"
	"github.com/hl7bridge/hl7v2/mllp"
	"github.com/hl7bridge/hl7v2/reader"
	"github.com/hl7bridge/hl7v2/segments"
	"github.com/hl7bridge/hl7v2/writer"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func dialectOf(cmd *cobra.Command) delim.Dialect {
	if GetString(cmd, "dialect") == "text" {
		return delim.Text
	}
	return delim.Wire
}

// readInput reads path (or stdin, for "-"), stripping MLLP framing first
// when --mllp was given.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("hl7tool: reading %s: %w", path, err)
	}

	if GetFlag(cmd, "mllp") {
		inner, incomplete, ferr := mllp.FromMLLP(data)
		if ferr != nil {
			return nil, fmt.Errorf("hl7tool: unframing %s: %w", path, ferr)
		}
		if incomplete {
			return nil, fmt.Errorf("hl7tool: %s: incomplete MLLP frame", path)
		}
		data = inner
	}
	log.Debugf("read %d bytes from %s", len(data), path)
	return data, nil
}

func readerOpts(cmd *cobra.Command) reader.Options {
	return reader.Options{
		Dialect:  dialectOf(cmd),
		Trim:     GetFlag(cmd, "trim"),
		Registry: reader.Registry(segments.Registry()),
	}
}

func writerOpts(cmd *cobra.Command) writer.Options {
	return writer.Options{
		Dialect:    dialectOf(cmd),
		Trim:       GetFlag(cmd, "trim"),
		Separators: delim.Default(),
		Registry:   writer.Registry(segments.Registry()),
	}
}
