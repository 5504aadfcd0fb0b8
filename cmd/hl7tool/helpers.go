package main

import (
	"fmt"
	"os"

	"github.com/hl7bridge/hl7v2/reader"
	"github.com/hl7bridge/hl7v2/value"
	log "github.com/sirupsen/logrus"
)

func fatal(err error) {
	log.Error(err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// readAll is reader.ReadAll, named locally so callers in this package read
// the same whether the message comes from a file or stdin.
var readAll = reader.ReadAll

func valueString(v value.Value) string {
	if v.Null {
		return `""`
	}
	return v.Raw
}
