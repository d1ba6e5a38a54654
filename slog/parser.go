// Package slog provides logging decorators for the extraction pipeline.
package slog

import (
	"log/slog"
	"time"

	agentskills "github.com/IAFahim/agent-skills"
)

// Ensure LoggingParser implements agentskills.RuleParser.
var _ agentskills.RuleParser = (*LoggingParser)(nil)

// LoggingParser wraps a RuleParser with debug logging.
type LoggingParser struct {
	next   agentskills.RuleParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next agentskills.RuleParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseRule delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseRule(doc *agentskills.RuleDocument, profile *agentskills.Profile) (rule *agentskills.Rule, err error) {
	defer func(begin time.Time) {
		attrs := []any{"file", doc.Filename}
		if rule != nil {
			attrs = append(attrs, "id", rule.ID, "examples", len(rule.Examples))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		p.logger.Debug("parse rule", attrs...)
	}(time.Now())
	return p.next.ParseRule(doc, profile)
}
