package agentskills

import (
	"maps"
	"slices"
)

// DefaultLanguage is used for fences without an info string when the
// profile does not configure a language of its own.
const DefaultLanguage = "typescript"

// DefaultPattern matches candidate rule documents inside a profile directory.
const DefaultPattern = "*.md"

// Profile selects a source directory of rule documents and describes its
// section taxonomy.
type Profile struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`

	// Sections maps a short prefix token (e.g. "async") to a
	// human-readable category (e.g. "Eliminating Waterfalls").
	Sections map[string]string `json:"sections"`

	// Language is the default language for unlabeled fences.
	Language string `json:"language"`

	// Pattern is a glob, relative to Dir, selecting candidate documents.
	Pattern string `json:"pattern"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if p.Dir == "" {
		return Errorf(EINVALID, "profile %q: source directory required", p.Name)
	}
	return nil
}

// DefaultLanguage returns the fence language used when a block has no info string.
func (p *Profile) DefaultLanguage() string {
	if p.Language == "" {
		return DefaultLanguage
	}
	return p.Language
}

// DocumentPattern returns the glob selecting candidate documents.
func (p *Profile) DocumentPattern() string {
	if p.Pattern == "" {
		return DefaultPattern
	}
	return p.Pattern
}

// Category returns the human-readable name of a section token.
func (p *Profile) Category(section string) (string, bool) {
	name, ok := p.Sections[section]
	return name, ok
}

func (p *Profile) clone() *Profile {
	other := *p
	other.Sections = maps.Clone(p.Sections)
	return &other
}

// ProfileResolver looks up profiles by name.
type ProfileResolver interface {
	// Resolve returns the named profile, or the default profile when name
	// is empty. Returns ENOTFOUND if no such profile is registered.
	Resolve(name string) (*Profile, error)
}

// Ensure Registry implements ProfileResolver at compile time.
var _ ProfileResolver = (*Registry)(nil)

// Registry is an immutable set of profiles with a designated default.
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	profiles    map[string]*Profile
	defaultName string
}

// NewRegistry creates a Registry from the given profiles. The profiles are
// copied, so later changes by the caller do not affect the registry.
func NewRegistry(defaultName string, profiles ...*Profile) (*Registry, error) {
	r := &Registry{
		profiles:    make(map[string]*Profile, len(profiles)),
		defaultName: defaultName,
	}
	for _, p := range profiles {
		if p == nil {
			continue
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.profiles[p.Name]; exists {
			return nil, Errorf(EINVALID, "duplicate profile %q", p.Name)
		}
		r.profiles[p.Name] = p.clone()
	}
	if _, ok := r.profiles[defaultName]; !ok {
		return nil, Errorf(EINVALID, "default profile %q is not defined", defaultName)
	}
	return r, nil
}

// Resolve returns a copy of the named profile. An empty name selects the
// default profile.
func (r *Registry) Resolve(name string) (*Profile, error) {
	if name == "" {
		name = r.defaultName
	}
	p, ok := r.profiles[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "unknown profile %q (available: %v)", name, r.Names())
	}
	return p.clone(), nil
}

// Default returns the name of the default profile.
func (r *Registry) Default() string {
	return r.defaultName
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.profiles))
}
