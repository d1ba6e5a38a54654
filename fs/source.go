// Package fs provides file-based document enumeration and corpus output.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/bmatcuk/doublestar/v4"
)

// Ensure Source implements agentskills.DocumentSource at compile time.
var _ agentskills.DocumentSource = (*Source)(nil)

// Source reads rule documents from the local filesystem.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// ListDocuments returns markdown files under dir matching pattern, sorted by
// path. Underscore-prefixed files and the README/index document are skipped.
func (s *Source) ListDocuments(ctx context.Context, dir, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pattern == "" {
		pattern = agentskills.DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, agentskills.Errorf(agentskills.EINVALID, "invalid document pattern %q", pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, agentskills.Errorf(agentskills.EINVALID, "source path %q is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if !IsRuleDocument(match) {
			continue
		}
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(match)))
	}
	slices.Sort(paths)
	return paths, nil
}

// IsRuleDocument reports whether a file name is a candidate rule document.
func IsRuleDocument(name string) bool {
	base := filepath.Base(filepath.FromSlash(name))
	lower := strings.ToLower(base)
	switch {
	case filepath.Ext(lower) != ".md":
		return false
	case strings.HasPrefix(base, "_"):
		return false
	case lower == "readme.md", lower == "index.md":
		return false
	}
	return true
}

// ReadDocument reads a document fully into memory.
func (s *Source) ReadDocument(ctx context.Context, path string) (*agentskills.RuleDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return &agentskills.RuleDocument{
		Path:     path,
		Filename: filepath.Base(path),
		Content:  string(data),
	}, nil
}
