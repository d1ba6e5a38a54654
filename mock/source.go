package mock

import (
	"context"

	agentskills "github.com/IAFahim/agent-skills"
)

var _ agentskills.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of agentskills.DocumentSource.
type DocumentSource struct {
	ListDocumentsFn func(ctx context.Context, dir, pattern string) ([]string, error)
	ReadDocumentFn  func(ctx context.Context, path string) (*agentskills.RuleDocument, error)
}

func (s *DocumentSource) ListDocuments(ctx context.Context, dir, pattern string) ([]string, error) {
	return s.ListDocumentsFn(ctx, dir, pattern)
}

func (s *DocumentSource) ReadDocument(ctx context.Context, path string) (*agentskills.RuleDocument, error) {
	return s.ReadDocumentFn(ctx, path)
}
