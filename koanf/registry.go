// Package koanf loads the profile registry from built-in defaults, an
// optional YAML file and environment variables.
package koanf

import (
	"fmt"
	"io"
	"os"
	"strings"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding configuration.
// EXTRACT_TESTS_DEFAULT_PROFILE maps to default_profile.
const EnvPrefix = "EXTRACT_TESTS_"

const maxConfigFileSize = 1024 * 1024 // 1MB

// DefaultConfig is the built-in profile configuration.
const DefaultConfig = `
default_profile: react-best-practices
profiles:
  react-best-practices:
    dir: skills/react-best-practices/rules
    language: typescript
    pattern: "*.md"
    sections:
      async: Eliminating Waterfalls
      bundle: Bundle Size Optimization
      server: Server-Side Performance
      client: Client-Side Data Fetching
      rerender: Re-render Optimization
      rendering: Rendering Performance
      js: JavaScript Performance
      advanced: Advanced Patterns
`

// Config is the on-disk shape of the profile configuration.
type Config struct {
	DefaultProfile string                   `koanf:"default_profile"`
	Profiles       map[string]ProfileConfig `koanf:"profiles"`
}

// ProfileConfig configures one profile.
type ProfileConfig struct {
	Dir      string            `koanf:"dir"`
	Language string            `koanf:"language"`
	Pattern  string            `koanf:"pattern"`
	Sections map[string]string `koanf:"sections"`
}

// LoadRegistry builds the profile registry.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (EXTRACT_TESTS_DEFAULT_PROFILE)
//  2. YAML config file at path, when path is not empty
//  3. Built-in defaults (DefaultConfig)
//
// Profiles from the file are merged over the built-in ones by name.
func LoadRegistry(path string) (*agentskills.Registry, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(DefaultConfig)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load built-in config: %w", err)
	}

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, agentskills.Errorf(agentskills.EINVALID, "failed to load config file %s: %v", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, agentskills.Errorf(agentskills.EINVALID, "failed to unmarshal config: %v", err)
	}

	return cfg.Registry()
}

// Registry converts the configuration into an immutable registry.
func (c *Config) Registry() (*agentskills.Registry, error) {
	profiles := make([]*agentskills.Profile, 0, len(c.Profiles))
	for name, pc := range c.Profiles {
		profiles = append(profiles, &agentskills.Profile{
			Name:     name,
			Dir:      pc.Dir,
			Sections: pc.Sections,
			Language: pc.Language,
			Pattern:  pc.Pattern,
		})
	}
	return agentskills.NewRegistry(c.DefaultProfile, profiles...)
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, agentskills.Errorf(agentskills.EINVALID, "config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}
