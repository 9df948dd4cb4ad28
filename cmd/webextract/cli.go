package main

import (
	"context"
	"io"
	"time"

	"github.com/JLcilliers/web-page-content-extractor/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runner *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract structured content from one or more URLs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string      `arg:"" help:"Page URLs to extract"`
	Format      string        `short:"f" default:"text" enum:"text,json,pdf" help:"Output format (text, json, pdf)"`
	Output      string        `short:"o" help:"Output directory; required for pdf, defaults to stdout otherwise"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64       `default:"1" help:"Max requests per second per domain"`
	Timeout     time.Duration `default:"30s" help:"HTTP fetch timeout"`
	Verbose     bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}
