package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bodymd"
	"github.com/fwojciec/bodymd/fs"
	"github.com/fwojciec/bodymd/goquery"
	"github.com/fwojciec/bodymd/htmltomarkdown"
	bodyslog "github.com/fwojciec/bodymd/slog"
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
type Main struct{}

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
		kong.Name("bodymd"),
		kong.Description("Maintain a Markdown mirror of a static HTML page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bodymd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var extractor bodymd.Extractor = goquery.NewExtractor()
	var converter bodymd.Converter = htmltomarkdown.NewConverter()

	// Logging goes to stderr so stdout stays reserved for extracted
	// fragments and converted Markdown.
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		extractor = bodyslog.NewLoggingExtractor(extractor, logger)
		converter = bodyslog.NewLoggingConverter(converter, logger)
	}

	deps.Extractor = extractor
	deps.Converter = converter
	deps.Mirrors = fs.NewStore()

	return kongCtx.Run(deps)
}
