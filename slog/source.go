package slog

import (
	"context"
	"log/slog"
	"time"

	agentskills "github.com/IAFahim/agent-skills"
)

// Ensure LoggingSource implements agentskills.DocumentSource.
var _ agentskills.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with logging.
type LoggingSource struct {
	next   agentskills.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next agentskills.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// ListDocuments delegates to the wrapped source and logs the listing.
func (s *LoggingSource) ListDocuments(ctx context.Context, dir, pattern string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list documents",
			"dir", dir,
			"pattern", pattern,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListDocuments(ctx, dir, pattern)
}

// ReadDocument delegates to the wrapped source. Only failures are logged.
func (s *LoggingSource) ReadDocument(ctx context.Context, path string) (*agentskills.RuleDocument, error) {
	doc, err := s.next.ReadDocument(ctx, path)
	if err != nil {
		s.logger.Debug("read document", "path", path, "err", err)
	}
	return doc, err
}
