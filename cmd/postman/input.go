package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// Input holds every flag value of the command tree.
type Input struct {
	verbose   bool
	logFormat string

	// solve / demo
	format    string
	start     int
	workers   int
	maxOdd    int
	algorithm string
	matrix    bool
	jsonOut   bool

	// generate
	kind      string
	vertices  int
	rows      int
	cols      int
	prob      float64
	seed      int64
	minWeight int64
	maxWeight int64
	outFormat string
	output    string
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// configureLogging sets the standard logrus logger's level and formatter.
func configureLogging(input *Input, out io.Writer) error {
	log.SetOutput(out)
	if input.verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	switch strings.ToLower(input.logFormat) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			ForceColors:      isTerminal(out),
			DisableQuote:     true,
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown --log-format %q (want text or json)", input.logFormat)
	}

	return nil
}
