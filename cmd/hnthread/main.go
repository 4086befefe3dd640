package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hnthread"
	"github.com/fwojciec/hnthread/htmltomarkdown"
	hnhttp "github.com/fwojciec/hnthread/http"
	hnslog "github.com/fwojciec/hnthread/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher hnthread.ItemFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hnthread"),
		kong.Description("Fetch a Hacker News thread and print its comments as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"base_url": hnhttp.DefaultBaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Usage goes to stderr so stdout only ever carries JSON.
	if len(args) == 0 {
		parser.Stdout = stderr
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no item reference provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: m.Fetcher,
	}

	if deps.Fetcher == nil {
		deps.Fetcher = hnhttp.NewItemFetcher(
			hnhttp.WithBaseURL(cli.BaseURL),
			hnhttp.WithTimeout(cli.Timeout),
		)
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Fetcher = hnslog.NewLoggingItemFetcher(deps.Fetcher, logger)
	}

	deps.Normalizer = &hnthread.Normalizer{}
	if cli.Text == TextMarkdown {
		deps.Normalizer.Converter = htmltomarkdown.NewConverter()
	}

	cmd := &FetchCmd{Ref: cli.Ref}

	return cmd.Run(deps)
}

// formatError returns the message shown to the user for err.
func formatError(err error) string {
	if hnthread.ErrorCode(err) == hnthread.EINTERNAL {
		return err.Error()
	}
	return "error: " + hnthread.ErrorMessage(err)
}
