package agentskills

import "context"

// CaseType is the serialized polarity of a test case.
type CaseType string

// CaseType values are part of the output contract.
const (
	CaseGood CaseType = "good"
	CaseBad  CaseType = "bad"
)

// TestCase is one classified example in the output corpus.
// Field names and order are part of the output contract.
type TestCase struct {
	RuleID      string   `json:"ruleId"`
	RuleTitle   string   `json:"ruleTitle"`
	Type        CaseType `json:"type"`
	Code        string   `json:"code"`
	Language    string   `json:"language"`
	Description string   `json:"description"`
}

// TestCaseWriter persists the extracted corpus.
type TestCaseWriter interface {
	WriteTestCases(ctx context.Context, cases []*TestCase) error
}

// TestCaseFilter represents a filter for reading back test cases.
type TestCaseFilter struct {
	RuleID *string   `json:"ruleId"`
	Type   *CaseType `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
