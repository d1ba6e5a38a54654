// Package extract provides test case extraction orchestration.
// It coordinates profile resolution, document enumeration, parsing and
// classification of rule documents.
package extract

import (
	"context"
	"fmt"

	agentskills "github.com/IAFahim/agent-skills"
	"golang.org/x/sync/errgroup"
)

// Extractor turns the rule documents of a profile into test cases.
type Extractor struct {
	Profiles agentskills.ProfileResolver
	Source   agentskills.DocumentSource
	Parser   agentskills.RuleParser

	// Concurrency bounds the number of documents read and parsed at once.
	// Values below 1 mean one document at a time.
	Concurrency int
}

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Rule      *agentskills.Rule
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressParsed
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// Run extracts test cases for the named profile; an empty name selects the
// default profile.
//
// Profile and enumeration errors are returned before any document is read.
// Per-document read and parse errors never fail the run: they are recorded
// in the report and the remaining documents are processed. The report lists
// test cases in enumeration order regardless of Concurrency.
func (e *Extractor) Run(ctx context.Context, profileName string, progress ProgressFunc) (*agentskills.Report, error) {
	profile, err := e.Profiles.Resolve(profileName)
	if err != nil {
		return nil, err
	}
	return e.Extract(ctx, profile, progress)
}

// Extract runs the extraction for an already resolved profile.
func (e *Extractor) Extract(ctx context.Context, profile *agentskills.Profile, progress ProgressFunc) (*agentskills.Report, error) {
	paths, err := e.Source.ListDocuments(ctx, profile.Dir, profile.DocumentPattern())
	if err != nil {
		return nil, fmt.Errorf("list documents for profile %q: %w", profile.Name, err)
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := e.processAll(ctx, profile, paths)

	report := agentskills.NewReport(profile.Name)
	for i, res := range results {
		report.Add(res)

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressParsed,
			Completed: i + 1,
			Total:     total,
			Path:      res.Path,
			Rule:      res.Rule,
			Error:     res.Err,
		}
		if res.Err != nil {
			event.Type = ProgressFailed
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return report, nil
}

// processAll processes documents with bounded concurrency. Results are
// slotted by enumeration index, so completion order never affects output.
func (e *Extractor) processAll(ctx context.Context, profile *agentskills.Profile, paths []string) []agentskills.DocumentResult {
	concurrency := e.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]agentskills.DocumentResult, len(paths))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = e.processDocument(ctx, profile, path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// processDocument reads and parses one document. The content is fully read
// before parsing starts.
func (e *Extractor) processDocument(ctx context.Context, profile *agentskills.Profile, path string) agentskills.DocumentResult {
	doc, err := e.Source.ReadDocument(ctx, path)
	if err != nil {
		return agentskills.DocumentResult{Path: path, Err: err}
	}

	rule, err := e.Parser.ParseRule(doc, profile)
	if err != nil {
		return agentskills.DocumentResult{Path: path, Err: err}
	}
	return agentskills.DocumentResult{Path: path, Rule: rule}
}
