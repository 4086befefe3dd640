package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/hnthread"
)

// Text rendering modes for comment bodies.
const (
	TextStrip    = "strip"
	TextMarkdown = "markdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher    hnthread.ItemFetcher
	Normalizer *hnthread.Normalizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ref     string        `arg:"" name:"url-or-id" help:"Hacker News item URL or numeric id"`
	BaseURL string        `name:"base-url" default:"${base_url}" env:"HNTHREAD_BASE_URL" help:"Root of the items API"`
	Timeout time.Duration `short:"t" default:"30s" env:"HNTHREAD_TIMEOUT" help:"HTTP timeout (0 waits forever)"`
	Text    string        `enum:"strip,markdown" default:"strip" env:"HNTHREAD_TEXT" help:"Comment text rendering: strip tags or convert to markdown"`
	Verbose bool          `short:"v" help:"Log requests to stderr"`
}
