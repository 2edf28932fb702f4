// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

var formatters = map[string]log.Formatter{
	"":       log.TextFormatter,
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// NewLogger builds a timestamped logger for w from the log section.
// verbose forces the debug level.
func (c LogConfig) NewLogger(w io.Writer, verbose bool) *log.Logger {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Formatter:       formatters[strings.ToLower(c.Format)],
	})
}
