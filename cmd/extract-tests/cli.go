package main

import (
	"context"
	"io"
	"log/slog"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/IAFahim/agent-skills/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Registry  *agentskills.Registry
	Extractor *extract.Extractor
}

// ExtractCmd runs one extraction and writes the corpus.
type ExtractCmd struct {
	Profile string
	Output  string
	Format  string
	Strict  bool
}

// ListProfilesCmd prints the registered profiles.
type ListProfilesCmd struct{}
