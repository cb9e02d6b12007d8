package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsfeed"
	"github.com/fwojciec/newsfeed/fs"
	"github.com/fwojciec/newsfeed/goquery"
	nfslog "github.com/fwojciec/newsfeed/slog"
	"github.com/fwojciec/newsfeed/sqlite"
	"github.com/fwojciec/newsfeed/yaml"
)

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
	// SQLite archive used by the run commands. Nil until Run opens it.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService newsfeed.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsfeed"),
		kong.Description("Group news from a saved listing page by rubric"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Pipeline for the parse command.
	extractorOpts := []goquery.Option{}
	if cli.Parse.Profile != "" {
		selectors, err := yaml.LoadSelectors(cli.Parse.Profile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", newsfeed.ErrorMessage(err))
			return err
		}
		extractorOpts = append(extractorOpts, goquery.WithSelectors(selectors))
	}

	var loaderOpts []fs.LoaderOption
	if cli.Parse.Charset != "" {
		loaderOpts = append(loaderOpts, fs.WithCharset(cli.Parse.Charset))
	}

	deps.Loader = fs.NewLoader(loaderOpts...)
	deps.Extractor = goquery.NewExtractor(extractorOpts...)
	deps.Reports = fs.NewReportWriter(cli.Parse.Output)

	// Archive is optional and only opened when a path is configured.
	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set NEWSFEED_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		m.RunService = sqlite.NewRunService(m.DB)
		deps.Runs = m.RunService
	}

	if logger != nil {
		deps.Loader = nfslog.NewLoggingLoader(deps.Loader, logger)
		deps.Extractor = nfslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Reports = nfslog.NewLoggingReportWriter(deps.Reports, logger)
		if deps.Runs != nil {
			deps.Runs = nfslog.NewLoggingRunService(deps.Runs, logger)
		}
	}

	return kongCtx.Run(deps)
}
