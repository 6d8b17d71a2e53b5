package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mstanek/scout"
	"github.com/mstanek/scout/gemini"
	"github.com/mstanek/scout/goquery"
	scouthttp "github.com/mstanek/scout/http"
	"github.com/mstanek/scout/htmltomarkdown"
	"github.com/mstanek/scout/rod"
	"github.com/mstanek/scout/scan"
	scoutslog "github.com/mstanek/scout/slog"
	"github.com/mstanek/scout/trafilatura"
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

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run wires the real
	// implementations (headless browser, Gemini, live HTTP).
	Fetcher scout.Fetcher
	Feeds   scout.FeedService
	Pitcher scout.Pitcher

	// RetryDelays overrides the fetch retry backoff. Nil means the
	// defaults; an empty slice disables retries.
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
		kong.Name("scout"),
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
		return fmt.Errorf("no command specified. Run 'scout --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire the page fetcher: a saved-HTML file when requested, the
	// headless browser otherwise.
	fetcher := m.Fetcher
	if fetcher == nil {
		switch {
		case cmd == "scan" && cli.Scan.FromFile != "":
			fetcher = &fileFetcher{path: cli.Scan.FromFile}
		case cmd == "pitch" && cli.Pitch.FromFile != "":
			fetcher = &fileFetcher{path: cli.Pitch.FromFile}
		default:
			rf, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer rf.Close()
			fetcher = rf
		}
	}
	if cli.Verbose {
		fetcher = rod.NewLoggingFetcher(fetcher, logger)
	}

	collector := goquery.NewCollector()
	deps.Fetcher = fetcher
	deps.Channels = collector
	deps.Scanner = &scan.Scanner{
		Fetcher:     fetcher,
		Collector:   collector,
		Channels:    collector,
		Concurrency: cli.Batch.Concurrency,
		RetryDelays: m.RetryDelays,
	}
	if cmd == "batch" {
		deps.Scanner.RateLimiter = scan.NewHostLimiter(cli.Batch.Rate)
	}

	if cmd == "pitch" {
		feeds := m.Feeds
		if feeds == nil {
			feeds = scouthttp.NewFeedService(nil)
		}
		if cli.Verbose {
			feeds = scoutslog.NewLoggingFeedService(feeds, logger)
		}
		deps.Feeds = feeds

		pitcher := m.Pitcher
		if pitcher == nil {
			var client *genai.Client
			if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
				client, err = genai.NewClient(ctx, &genai.ClientConfig{
					APIKey:  apiKey,
					Backend: genai.BackendGeminiAPI,
				})
				if err != nil {
					fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
					return fmt.Errorf("failed to connect to Gemini API: %w", err)
				}
			} else {
				fmt.Fprintln(stderr, "GEMINI_API_KEY not set; using the templated fallback opener")
			}
			pitcher = gemini.NewPitcher(client)
		}
		if cli.Verbose {
			pitcher = scoutslog.NewLoggingPitcher(pitcher, logger)
		}
		deps.Pitcher = pitcher
		deps.Extractor = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}
