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

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestSource_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ agentskills.DocumentSource = &fs.Source{}
}

func TestSource_ListDocuments(t *testing.T) {
	t.Parallel()

	t.Run("lists sorted markdown documents and skips non-documents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"rerender-memo.md":  "x",
			"async-parallel.md": "x",
			"_sections.md":      "x",
			"_template.md":      "x",
			"README.md":         "x",
			"notes.txt":         "x",
			"nested/deep.md":    "x",
		})

		paths, err := fs.NewSource().ListDocuments(context.Background(), dir, "*.md")

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "async-parallel.md"),
			filepath.Join(dir, "rerender-memo.md"),
		}, paths)
	})

	t.Run("recursive pattern includes nested documents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"a.md":            "x",
			"nested/b.md":     "x",
			"nested/index.md": "x",
		})

		paths, err := fs.NewSource().ListDocuments(context.Background(), dir, "**/*.md")

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.md"),
			filepath.Join(dir, "nested", "b.md"),
		}, paths)
	})

	t.Run("empty pattern uses default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"a.md": "x"})

		paths, err := fs.NewSource().ListDocuments(context.Background(), dir, "")

		require.NoError(t, err)
		assert.Len(t, paths, 1)
	})

	t.Run("empty directory returns no documents", func(t *testing.T) {
		t.Parallel()

		paths, err := fs.NewSource().ListDocuments(context.Background(), t.TempDir(), "*.md")

		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource().ListDocuments(context.Background(), filepath.Join(t.TempDir(), "missing"), "*.md")

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file instead of directory is invalid", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"a.md": "x"})

		_, err := fs.NewSource().ListDocuments(context.Background(), filepath.Join(dir, "a.md"), "*.md")

		require.Error(t, err)
		assert.Equal(t, agentskills.EINVALID, agentskills.ErrorCode(err))
	})

	t.Run("invalid pattern is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource().ListDocuments(context.Background(), t.TempDir(), "[")

		require.Error(t, err)
		assert.Equal(t, agentskills.EINVALID, agentskills.ErrorCode(err))
	})
}

func TestIsRuleDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{name: "async-parallel.md", want: true},
		{name: "nested/rule.MD", want: true},
		{name: "_sections.md", want: false},
		{name: "README.md", want: false},
		{name: "readme.md", want: false},
		{name: "index.md", want: false},
		{name: "rule.txt", want: false},
		{name: "rule", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.IsRuleDocument(tt.name))
		})
	}
}

func TestSource_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads full content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"async-x.md": "---\ntitle: X\n---\n"})
		path := filepath.Join(dir, "async-x.md")

		doc, err := fs.NewSource().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, "async-x.md", doc.Filename)
		assert.Equal(t, "---\ntitle: X\n---\n", doc.Content)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource().ReadDocument(context.Background(), filepath.Join(t.TempDir(), "nope.md"))

		require.Error(t, err)
	})

	t.Run("canceled context is an error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewSource().ReadDocument(ctx, "whatever.md")

		require.ErrorIs(t, err, context.Canceled)
	})
}
