package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	webextract "github.com/JLcilliers/web-page-content-extractor"
	"github.com/JLcilliers/web-page-content-extractor/batch"
	"github.com/JLcilliers/web-page-content-extractor/goquery"
	webhttp "github.com/JLcilliers/web-page-content-extractor/http"
	webslog "github.com/JLcilliers/web-page-content-extractor/slog"
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
	// Fetcher overrides the HTTP fetcher, for end-to-end testing.
	Fetcher webextract.Fetcher

	// RetryDelays overrides the fetch retry backoff, for end-to-end testing.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("webextract"),
		kong.Description("Heuristic web page content extractor."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URLs specified. Run 'webextract --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the pipeline from the parsed flags.
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = webhttp.NewFetcher(webhttp.WithTimeout(cli.Extract.Timeout))
	}
	defer fetcher.Close()

	var extractor webextract.Extractor = goquery.NewExtractor()

	if cli.Extract.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = webslog.NewLoggingFetcher(fetcher, logger)
		extractor = webslog.NewLoggingExtractor(extractor, logger)
	}

	deps.Runner = &batch.Runner{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Limiter:     batch.NewDomainLimiter(cli.Extract.Rate),
		Concurrency: cli.Extract.Concurrency,
		RetryDelays: m.RetryDelays,
	}

	return kongCtx.Run(deps)
}
