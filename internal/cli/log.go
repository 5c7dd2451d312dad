// Package cli implements the proofgen command-line interface.
//
// # Commands
//
//   - generate: render the diagram and write the repository bundle
//   - diagram: render only the diagram, in any supported format
//   - prompt: print the image-generation prompt
//   - templates: list the built-in diagram templates
//   - session: show or forget the last request
//   - cache: manage the artifact cache
//   - config: show the effective configuration
//   - serve: run the local dashboard
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose switches to debug
// level and logs pipeline, cache and HTTP events. The logger travels in the
// command's context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger stamped with "HH:MM:SS.cc" times.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time as a "took" field.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
