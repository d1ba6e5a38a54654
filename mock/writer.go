package mock

import (
	"context"

	agentskills "github.com/IAFahim/agent-skills"
)

var _ agentskills.TestCaseWriter = (*TestCaseWriter)(nil)

// TestCaseWriter is a mock implementation of agentskills.TestCaseWriter.
type TestCaseWriter struct {
	WriteTestCasesFn func(ctx context.Context, cases []*agentskills.TestCase) error
}

func (w *TestCaseWriter) WriteTestCases(ctx context.Context, cases []*agentskills.TestCase) error {
	return w.WriteTestCasesFn(ctx, cases)
}
