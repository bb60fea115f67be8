// Package logging provides the module-wide structured logger. Every
// package logs through Log rather than constructing its own logrus
// instance, so output formatting and routing stay consistent whether the
// caller is the CLI or a library consumer embedding
// this module in its own process.
package logging

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
)

// outputSplitter routes error-level records to stderr and everything
// else to stdout, so shell pipelines and container log collectors can
// treat the two streams differently without parsing log bodies.
type outputSplitter struct{}

func (outputSplitter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("level=error")) || bytes.Contains(p, []byte(`"level":"error"`)) {
		return os.Stderr.Write(p)
	}
	return os.Stdout.Write(p)
}

// Log is the shared logger instance used throughout this module.
var Log = logrus.New()

func init() {
	Log.SetOutput(outputSplitter{})
}

// SetJSON switches the logger to JSON formatting. The CLI does not call
// it; the default text formatter stays in effect unless a caller does.
func SetJSON() {
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetLevel parses a level name ("debug", "info", "warn", "error") and
// applies it, falling back to Info on an unrecognized value.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
