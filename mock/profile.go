package mock

import agentskills "github.com/IAFahim/agent-skills"

var _ agentskills.ProfileResolver = (*ProfileResolver)(nil)

// ProfileResolver is a mock implementation of agentskills.ProfileResolver.
type ProfileResolver struct {
	ResolveFn func(name string) (*agentskills.Profile, error)
}

func (r *ProfileResolver) Resolve(name string) (*agentskills.Profile, error) {
	return r.ResolveFn(name)
}
