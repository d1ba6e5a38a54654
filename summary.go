package agentskills

import (
	"fmt"
	"strings"
)

// FormatSummary formats the operator-facing summary of a run. Skipped
// documents are only counted; their reasons are reported as they happen.
func FormatSummary(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extracted %d test cases from %d rules (%d bad, %d good)\n",
		r.Total(), r.Rules, r.Bad, r.Good)
	if r.Excluded > 0 {
		fmt.Fprintf(&b, "Excluded %d examples with unrecognized labels\n", r.Excluded)
	}
	if len(r.Failures) > 0 {
		fmt.Fprintf(&b, "Skipped %d of %d documents\n", len(r.Failures), r.Documents)
	}
	return b.String()
}
