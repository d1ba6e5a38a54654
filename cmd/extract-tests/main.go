// Command extract-tests converts a directory of rule documents into a labeled
// test case corpus.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/IAFahim/agent-skills/extract"
	"github.com/IAFahim/agent-skills/fs"
	"github.com/IAFahim/agent-skills/koanf"
	"github.com/IAFahim/agent-skills/markdown"
	askslog "github.com/IAFahim/agent-skills/slog"
	"github.com/alecthomas/kong"
)

// ProfileEnv names the environment variable selecting the profile when no
// profile argument is given.
const ProfileEnv = "EXTRACT_TESTS_PROFILE"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("extract-tests"),
		kong.Description("Extract labeled good/bad test cases from rule documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, err = parser.Parse(args)
	if exited {
		// --help was printed
		return nil
	}
	if err != nil {
		return err
	}

	if cli.Profile == "" && m.Getenv != nil {
		cli.Profile = m.Getenv(ProfileEnv)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	registry, err := koanf.LoadRegistry(cli.Config)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Registry: registry,
		Extractor: &extract.Extractor{
			Profiles:    registry,
			Source:      askslog.NewLoggingSource(fs.NewSource(), logger),
			Parser:      askslog.NewLoggingParser(markdown.NewParser(), logger),
			Concurrency: cli.Concurrency,
		},
	}

	if cli.ListProfiles {
		cmd := &ListProfilesCmd{}
		return cmd.Run(deps)
	}

	cmd := &ExtractCmd{
		Profile: cli.Profile,
		Output:  cli.Output,
		Format:  cli.Format,
		Strict:  cli.Strict,
	}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config       string `short:"c" env:"EXTRACT_TESTS_CONFIG" type:"existingfile" help:"YAML file with additional or overriding profiles"`
	Output       string `short:"o" help:"Output path (default: test-cases.json next to the profile directory)"`
	Format       string `short:"f" enum:"json,sqlite" default:"json" help:"Output format (json, sqlite)"`
	Concurrency  int    `short:"j" default:"1" help:"Number of documents parsed concurrently"`
	Strict       bool   `help:"Exit with an error when any document is skipped"`
	Verbose      bool   `short:"v" help:"Enable debug logging"`
	ListProfiles bool   `short:"l" help:"List available profiles and exit"`
	Profile      string `arg:"" optional:"" help:"Profile to extract (default: configured default profile)"`
}
