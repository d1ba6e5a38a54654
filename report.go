package agentskills

import "strconv"

// DocumentResult is the outcome of processing one document: either a
// parsed rule or the reason the document was skipped.
type DocumentResult struct {
	Path string
	Rule *Rule
	Err  error
}

// DocumentFailure records a skipped document.
type DocumentFailure struct {
	Path string
	Err  error
}

// Report aggregates the outcome of one extraction run.
type Report struct {
	Profile   string
	Documents int
	Rules     int
	TestCases []*TestCase
	Good      int
	Bad       int
	Excluded  int
	Failures  []DocumentFailure

	idCounts map[string]int
}

// NewReport returns an empty report for the named profile.
func NewReport(profile string) *Report {
	return &Report{
		Profile:   profile,
		TestCases: []*TestCase{},
		idCounts:  make(map[string]int),
	}
}

// Add folds one document result into the report. Results must be added in
// enumeration order; a rule whose ID was already seen in this run gets a
// numeric suffix so IDs stay unique.
func (r *Report) Add(res DocumentResult) {
	r.Documents++
	if res.Err != nil {
		r.Failures = append(r.Failures, DocumentFailure{Path: res.Path, Err: res.Err})
		return
	}
	if res.Rule == nil {
		r.Failures = append(r.Failures, DocumentFailure{
			Path: res.Path,
			Err:  Errorf(EINTERNAL, "no rule produced"),
		})
		return
	}
	if err := res.Rule.Validate(); err != nil {
		r.Failures = append(r.Failures, DocumentFailure{Path: res.Path, Err: err})
		return
	}

	if r.idCounts == nil {
		r.idCounts = make(map[string]int)
	}
	rule := res.Rule
	rule.ID = r.uniqueID(rule.ID)

	r.Rules++
	cases := rule.TestCases()
	for _, tc := range cases {
		switch tc.Type {
		case CaseGood:
			r.Good++
		case CaseBad:
			r.Bad++
		}
	}
	r.Excluded += len(rule.Examples) - len(cases)
	r.TestCases = append(r.TestCases, cases...)
}

func (r *Report) uniqueID(id string) string {
	count, exists := r.idCounts[id]
	if !exists {
		r.idCounts[id] = 1
		return id
	}
	for {
		candidate := id + "-" + strconv.Itoa(count)
		count++
		if _, taken := r.idCounts[candidate]; !taken {
			r.idCounts[id] = count
			r.idCounts[candidate] = 1
			return candidate
		}
	}
}

// Total returns the number of extracted test cases.
func (r *Report) Total() int {
	return len(r.TestCases)
}

// Degraded reports whether at least one document was skipped.
func (r *Report) Degraded() bool {
	return len(r.Failures) > 0
}
