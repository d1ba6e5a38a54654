package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	agentskills "github.com/IAFahim/agent-skills"
)

// Ensure Writer implements agentskills.TestCaseWriter at compile time.
var _ agentskills.TestCaseWriter = (*Writer)(nil)

// Writer writes the test case corpus as a JSON file.
// The file is written to a temporary sibling and renamed into place, so an
// interrupted write never leaves a partial artifact behind.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the given output path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output path.
func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// WriteTestCases replaces the output file with the given corpus.
func (w *Writer) WriteTestCases(ctx context.Context, cases []*agentskills.TestCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := FormatTestCases(cases)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(w.tempPath(), data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return fmt.Errorf("commit output: %w", err)
	}
	return nil
}

// FormatTestCases serializes test cases as an indented JSON array with a
// trailing newline. HTML characters in code are left unescaped.
func FormatTestCases(cases []*agentskills.TestCase) ([]byte, error) {
	if cases == nil {
		cases = []*agentskills.TestCase{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		return nil, fmt.Errorf("encode test cases: %w", err)
	}
	return buf.Bytes(), nil
}
