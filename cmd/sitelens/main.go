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
	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/gemini"
	"github.com/fwojciec/sitelens/goquery"
	sitelenshttp "github.com/fwojciec/sitelens/http"
	"github.com/fwojciec/sitelens/rod"
	"github.com/fwojciec/sitelens/scrape"
	sitelensslog "github.com/fwojciec/sitelens/slog"
	"github.com/fwojciec/sitelens/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// recyclePages is the browser recycling threshold used for batches.
const recyclePages = 50

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService    sitelens.RecordService
	PromptLogService sitelens.PromptLogService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitelens"),
		kong.Description("Scrape web pages into structured records."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitelens --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database
	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITELENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RecordService = sqlite.NewRecordService(m.DB)
	m.PromptLogService = sqlite.NewPromptLogService(m.DB)
	deps.Records = m.RecordService
	deps.PromptLogs = m.PromptLogService

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		scraper := newScraper(cli, logger)
		defer scraper.Close()
		deps.Scraper = scraper

		if cli.Scrape.RPS > 0 {
			deps.RateLimiter = scrape.NewHostLimiter(cli.Scrape.RPS)
		}
	}

	if (cmd == "scrape" && cli.Scrape.Analyze) || cmd == "prompt" {
		summarizer, err := newSummarizer(ctx, cli, stderr)
		if err != nil {
			return err
		}
		deps.Summarizer = summarizer
		deps.Prompter = summarizer
		if logger != nil {
			deps.Summarizer = sitelensslog.NewLoggingSummarizer(summarizer, logger)
			deps.Prompter = sitelensslog.NewLoggingPrompter(summarizer, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newScraper wires the retrieval strategies and extractors. With a logger
// every stage is decorated with logging.
func newScraper(cli *CLI, logger *slog.Logger) sitelens.Scraper {
	opts := []rod.Option{
		rod.WithWaitTimeout(cli.RenderTimeout),
		rod.WithBrowserBin(cli.BrowserBin),
		rod.WithStealth(cli.Stealth),
	}
	if len(cli.Scrape.URLs) > recyclePages {
		opts = append(opts, rod.WithMaxPages(recyclePages))
	}

	var fetcher sitelens.Fetcher = sitelenshttp.NewFetcher(sitelenshttp.WithTimeout(cli.HTTPTimeout))
	var renderer sitelens.Renderer = rod.NewRenderer(opts...)
	var policy sitelens.RenderPolicy = goquery.NewRenderPolicy()
	if logger != nil {
		fetcher = sitelensslog.NewLoggingFetcher(fetcher, logger)
		renderer = sitelensslog.NewLoggingRenderer(renderer, logger)
		policy = sitelensslog.NewLoggingRenderPolicy(policy, logger)
	}

	var scraper sitelens.Scraper = &scrape.Scraper{
		Fetcher:  fetcher,
		Renderer: renderer,
		Parser:   goquery.NewParser(),
		Policy:   policy,
		Fields:   goquery.NewFieldExtractor(),
		Metadata: goquery.NewMetadataExtractor(),
	}
	if logger != nil {
		scraper = sitelensslog.NewLoggingScraper(scraper, logger)
	}
	return scraper
}

func newSummarizer(ctx context.Context, cli *CLI, stderr io.Writer) (*gemini.Summarizer, error) {
	if cli.GeminiAPIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	opts := []gemini.Option{gemini.WithModel(cli.GeminiModel)}
	if tc, err := gemini.NewTokenCounter(cli.GeminiModel); err == nil {
		opts = append(opts, gemini.WithTokenCounter(tc))
	}

	return gemini.NewSummarizer(client, opts...), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitelens.db"
	}
	dir := filepath.Join(home, ".sitelens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitelens.db")
}
