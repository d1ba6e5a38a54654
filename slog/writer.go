package slog

import (
	"context"
	"log/slog"
	"time"

	agentskills "github.com/IAFahim/agent-skills"
)

// Ensure LoggingWriter implements agentskills.TestCaseWriter.
var _ agentskills.TestCaseWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a TestCaseWriter with logging.
type LoggingWriter struct {
	next   agentskills.TestCaseWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next agentskills.TestCaseWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteTestCases delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteTestCases(ctx context.Context, cases []*agentskills.TestCase) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write test cases",
			"cases", len(cases),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteTestCases(ctx, cases)
}
