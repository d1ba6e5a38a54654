package agentskills

import "strings"

// Polarity is the classification of an example label.
type Polarity int

const (
	PolarityExcluded Polarity = iota
	PolarityPositive
	PolarityNegative
)

func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	default:
		return "excluded"
	}
}

// CaseType returns the test case type for the polarity.
// Returns false for excluded examples.
func (p Polarity) CaseType() (CaseType, bool) {
	switch p {
	case PolarityPositive:
		return CaseGood, true
	case PolarityNegative:
		return CaseBad, true
	default:
		return "", false
	}
}

var (
	negativeKeywords = []string{"incorrect", "wrong", "bad"}
	positiveKeywords = []string{"correct", "good"}
)

// Classify assigns a polarity to an example label by case-insensitive
// substring match. Negative keywords are checked first and win, so
// "Good, but incorrect usage" is negative. Labels matching neither list
// are excluded.
func Classify(label string) Polarity {
	lower := strings.ToLower(label)
	if containsAny(lower, negativeKeywords) {
		return PolarityNegative
	}
	if containsAny(lower, positiveKeywords) {
		return PolarityPositive
	}
	return PolarityExcluded
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
