package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/IAFahim/agent-skills/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTestCases(t *testing.T) {
	t.Parallel()

	t.Run("formats cases with contract field names", func(t *testing.T) {
		t.Parallel()

		cases := []*agentskills.TestCase{
			{
				RuleID:      "arch-use-x",
				RuleTitle:   "Use X",
				Type:        agentskills.CaseBad,
				Code:        "if (a < b && c) {\n  <div/>\n}",
				Language:    "tsx",
				Description: "Incorrect example for Use X",
			},
		}

		got, err := fs.FormatTestCases(cases)

		require.NoError(t, err)
		want := `[
  {
    "ruleId": "arch-use-x",
    "ruleTitle": "Use X",
    "type": "bad",
    "code": "if (a < b && c) {\n  <div/>\n}",
    "language": "tsx",
    "description": "Incorrect example for Use X"
  }
]
`
		assert.Equal(t, want, string(got))
	})

	t.Run("empty corpus is an empty array", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatTestCases(nil)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(got))
	})
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ agentskills.TestCaseWriter = &fs.Writer{}
}

func TestWriter_WriteTestCases(t *testing.T) {
	t.Parallel()

	cases := []*agentskills.TestCase{
		{RuleID: "a", RuleTitle: "A", Type: agentskills.CaseGood, Code: "ok()", Language: "js", Description: "d"},
	}

	t.Run("writes file and removes temp file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "test-cases.json")
		w := fs.NewWriter(path)

		err := w.WriteTestCases(context.Background(), cases)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		want, err := fs.FormatTestCases(cases)
		require.NoError(t, err)
		assert.Equal(t, want, data)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
		assert.Equal(t, path, w.Path())
	})

	t.Run("overwrites existing output", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test-cases.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

		err := fs.NewWriter(path).WriteTestCases(context.Background(), nil)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("unwritable destination is an error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := fs.NewWriter(filepath.Join(blocker, "test-cases.json")).WriteTestCases(context.Background(), cases)

		require.Error(t, err)
	})
}
