package main

import (
	"fmt"
	"path/filepath"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/IAFahim/agent-skills/extract"
	"github.com/IAFahim/agent-skills/fs"
	askslog "github.com/IAFahim/agent-skills/slog"
	"github.com/IAFahim/agent-skills/sqlite"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	profile, err := deps.Registry.Resolve(c.Profile)
	if err != nil {
		return err
	}

	progress := func(e extract.ProgressEvent) {
		if e.Type == extract.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", filepath.Base(e.Path), agentskills.ErrorMessage(e.Error))
		}
	}

	report, err := deps.Extractor.Extract(deps.Ctx, profile, progress)
	if err != nil {
		return err
	}

	// Nothing usable: leave any previous artifact untouched.
	if report.Rules == 0 && report.Degraded() {
		return fmt.Errorf("no rule documents could be parsed (%d skipped)", len(report.Failures))
	}

	output := c.Output
	if output == "" {
		output = DefaultOutputPath(profile, c.Format)
	}

	if err := c.write(deps, output, report.TestCases); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprint(deps.Stdout, agentskills.FormatSummary(report))
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", output)

	if c.Strict && report.Degraded() {
		return fmt.Errorf("%d of %d documents skipped", len(report.Failures), report.Documents)
	}
	return nil
}

func (c *ExtractCmd) write(deps *Dependencies, output string, cases []*agentskills.TestCase) error {
	var writer agentskills.TestCaseWriter
	switch c.Format {
	case FormatSQLite:
		db := sqlite.NewDB(output)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		writer = sqlite.NewTestCaseService(db)
	case FormatJSON, "":
		writer = fs.NewWriter(output)
	default:
		return agentskills.Errorf(agentskills.EINVALID, "unknown output format %q", c.Format)
	}

	return askslog.NewLoggingWriter(writer, deps.Logger).WriteTestCases(deps.Ctx, cases)
}

// DefaultOutputPath returns the corpus path used when none is given: a file
// in the parent of the profile's source directory.
func DefaultOutputPath(profile *agentskills.Profile, format string) string {
	name := "test-cases.json"
	if format == FormatSQLite {
		name = "test-cases.db"
	}
	return filepath.Join(filepath.Dir(filepath.Clean(profile.Dir)), name)
}
