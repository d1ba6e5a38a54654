package agentskills

import "context"

// RuleDocument is the raw content of one rule document.
type RuleDocument struct {
	Path     string
	Filename string
	Content  string
}

// Rule is a parsed style-guide entry.
type Rule struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Section           string   `json:"section"`
	Category          string   `json:"category,omitempty"`
	Impact            string   `json:"impact,omitempty"`
	ImpactDescription string   `json:"impactDescription,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Filename          string   `json:"filename"`

	// Examples in document order.
	Examples []*Example `json:"examples"`
}

// Validate returns an error if the rule contains invalid fields.
func (r *Rule) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "rule ID required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "rule title required")
	}
	if r.Section == "" {
		return Errorf(EINVALID, "rule section required")
	}
	return nil
}

// TestCases returns one test case per classified example, in example order.
// Examples whose label classifies as excluded produce no test case.
func (r *Rule) TestCases() []*TestCase {
	cases := make([]*TestCase, 0, len(r.Examples))
	for _, ex := range r.Examples {
		typ, ok := Classify(ex.Label).CaseType()
		if !ok {
			continue
		}
		cases = append(cases, &TestCase{
			RuleID:      r.ID,
			RuleTitle:   r.Title,
			Type:        typ,
			Code:        ex.Code,
			Language:    ex.Language,
			Description: ex.Description,
		})
	}
	return cases
}

// Example is one labeled code snippet within a rule.
type Example struct {
	Label       string `json:"label"`
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description"`

	// Line is the 1-based line of the opening fence.
	Line int `json:"line"`
}

// RuleParser parses rule documents.
type RuleParser interface {
	// ParseRule parses one document using the profile's taxonomy and defaults.
	// Returns EMALFORMED if required metadata is missing or a code fence is
	// never closed.
	ParseRule(doc *RuleDocument, profile *Profile) (*Rule, error)
}

// DocumentSource enumerates and reads rule documents.
type DocumentSource interface {
	// ListDocuments returns the candidate documents under dir matching
	// pattern, sorted by path.
	ListDocuments(ctx context.Context, dir, pattern string) ([]string, error)

	// ReadDocument reads the full content of one document.
	ReadDocument(ctx context.Context, path string) (*RuleDocument, error)
}
