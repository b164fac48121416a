package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/fs"
	"github.com/fwojciec/docnav/goldmark"
	dnslog "github.com/fwojciec/docnav/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for commands that read from the terminal or a client (browse, mcp).
	Stdin io.Reader

	// Services for end-to-end testing. When nil, Run wires the
	// filesystem-backed implementations.
	DocumentService   docnav.DocumentService
	SearchService     docnav.SearchService
	NavigationService docnav.NavigationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docnav"),
		kong.Description("Index, search and navigate a tree of Markdown documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docnav --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.wire(cli, deps)

	return kongCtx.Run(deps)
}

// wire builds the services for the parsed global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) {
	logger := newLogger(deps.Stderr, cli.Verbose, cli.LogJSON)

	md := goldmark.NewMarkdown()
	md.AssetsDir = cli.AssetsDir

	documents := m.DocumentService
	if documents == nil {
		documents = dnslog.NewLoggingDocumentService(fs.NewRepository(cli.Root, md), logger)
	}

	search := m.SearchService
	if search == nil {
		search = dnslog.NewLoggingSearchService(fs.NewIndex(documents, md), logger)
	}

	navigation := m.NavigationService
	if navigation == nil {
		nav := fs.NewNavigator(documents, cli.Root)
		nav.Label = cli.SidebarLabel
		nav.OnConfigError = dnslog.ConfigErrorLogger(logger)
		navigation = dnslog.NewLoggingNavigationService(nav, logger)
	}

	deps.Logger = logger
	deps.Root = cli.Root
	deps.Prefix = cli.Prefix
	deps.Documents = documents
	deps.Search = search
	deps.Navigation = navigation
	deps.Segmenter = md
	deps.Renderer = dnslog.NewLoggingRenderer(md, logger)
}

func newLogger(w io.Writer, verbose, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
