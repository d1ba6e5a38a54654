package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/IAFahim/agent-skills/mock"
	askslog "github.com/IAFahim/agent-skills/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWriter_WriteTestCases(t *testing.T) {
	t.Parallel()

	t.Run("logs case count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var written []*agentskills.TestCase
		inner := &mock.TestCaseWriter{
			WriteTestCasesFn: func(_ context.Context, cases []*agentskills.TestCase) error {
				written = cases
				return nil
			},
		}
		cases := []*agentskills.TestCase{{RuleID: "a"}, {RuleID: "b"}, {RuleID: "c"}}

		w := askslog.NewLoggingWriter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := w.WriteTestCases(context.Background(), cases)

		require.NoError(t, err)
		assert.Equal(t, cases, written)
		assert.Contains(t, buf.String(), "write test cases")
		assert.Contains(t, buf.String(), "cases=3")
		assert.Contains(t, buf.String(), "err=<nil>")
	})

	t.Run("passes through errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TestCaseWriter{
			WriteTestCasesFn: func(_ context.Context, _ []*agentskills.TestCase) error {
				return errors.New("disk full")
			},
		}

		w := askslog.NewLoggingWriter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := w.WriteTestCases(context.Background(), nil)

		require.EqualError(t, err, "disk full")
		assert.Contains(t, buf.String(), `err="disk full"`)
	})
}
