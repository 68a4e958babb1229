package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/invoicefmt"
	"github.com/fwojciec/invoicefmt/goquery"
	"github.com/fwojciec/invoicefmt/render"
	"github.com/fwojciec/invoicefmt/rod"
	ifmtslog "github.com/fwojciec/invoicefmt/slog"
	"github.com/fwojciec/invoicefmt/sqlite"
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
	// Settings database path. Set before calling Run().
	DBPath string

	// SQLite database backing the settings store.
	DB *sqlite.DB

	// Settings service for end-to-end testing.
	SettingsService invoicefmt.SettingsService

	// NewRasterizer constructs the PDF rasterizer. Overridable for
	// end-to-end testing without a browser.
	NewRasterizer func() (invoicefmt.Rasterizer, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		NewRasterizer: func() (invoicefmt.Rasterizer, error) {
			return rod.NewRasterizer()
		},
	}
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
		kong.Name("invoicefmt"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'invoicefmt --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open settings database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set INVOICEFMT_DB to use a different settings path\n")
		return fmt.Errorf("failed to open settings database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SettingsService = sqlite.NewSettingsService(m.DB)
	deps.Settings = m.SettingsService

	// Wire the core pipeline
	deps.Renderer = render.NewRenderer()
	deps.Extractor = goquery.NewExtractor()
	if cli.Debug {
		deps.Extractor = ifmtslog.NewLoggingExtractor(deps.Extractor, deps.Logger)
	}

	// The rasterizer needs a running browser, so it is only started
	// when the command will actually produce PDFs. The command is taken
	// from the parse result, not args[0]: root flags like --debug may
	// precede the command name.
	command, _, _ := strings.Cut(kongCtx.Command(), " ")
	if command == "convert" && !cli.Convert.NoPDF {
		rasterizer, err := m.NewRasterizer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer rasterizer.Close()

		deps.Rasterizer = rasterizer
		if cli.Debug {
			deps.Rasterizer = rod.NewLoggingRasterizer(rasterizer, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("INVOICEFMT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "invoicefmt.db"
	}
	dir := filepath.Join(home, ".invoicefmt")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "invoicefmt.db")
}
