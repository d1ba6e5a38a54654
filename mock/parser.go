package mock

import agentskills "github.com/IAFahim/agent-skills"

var _ agentskills.RuleParser = (*RuleParser)(nil)

// RuleParser is a mock implementation of agentskills.RuleParser.
type RuleParser struct {
	ParseRuleFn func(doc *agentskills.RuleDocument, profile *agentskills.Profile) (*agentskills.Rule, error)
}

func (p *RuleParser) ParseRule(doc *agentskills.RuleDocument, profile *agentskills.Profile) (*agentskills.Rule, error) {
	return p.ParseRuleFn(doc, profile)
}
