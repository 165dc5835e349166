package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikisect"
	"github.com/fwojciec/wikisect/fs"
	"github.com/fwojciec/wikisect/goquery"
	wikihttp "github.com/fwojciec/wikisect/http"
	"github.com/fwojciec/wikisect/markdown"
	"github.com/fwojciec/wikisect/scrape"
	wikislog "github.com/fwojciec/wikisect/slog"
	"github.com/fwojciec/wikisect/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors were already reported by the command.
		if wikisect.ErrorCode(err) == wikisect.EINTERNAL {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin supplies URLs and answers in interactive mode.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("wikisect"),
		kong.Description("Report the most frequent words and every link in each section of a Wikipedia article"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Help anywhere in args prints usage and stops; kong reports it through Exit.
	if len(args) == 1 && args[0] == "help" {
		args = []string{"--help"}
	}
	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if err := cli.apply(cfg); err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	var source wikisect.StopWordSource
	if cfg.StopWordsPath != "" {
		file := fs.NewStopWordFile(cfg.StopWordsPath)
		source = wikislog.NewLoggingStopWordSource(file, file.Path(), logger)
	}
	stopWords := wikisect.LoadStopWords(ctx, source, func(err error) {
		fmt.Fprintf(stderr, "warning: %s\n", wikisect.ErrorMessage(err))
	})

	fetcher := wikihttp.NewFetcher(
		wikihttp.WithTimeout(cfg.Timeout),
		wikihttp.WithUserAgent(cfg.UserAgent),
		wikihttp.WithRateLimit(cfg.RequestsPerSecond),
	)
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Fetcher: wikislog.NewLoggingFetcher(fetcher, logger),
		Parser:  wikislog.NewLoggingParser(goquery.NewParser(), logger),
		Options: cfg.PageOptions(stopWords),
	}
	deps.Writer = reportWriter(cfg.Format)

	cmd := &ScrapeCmd{
		URL:   cli.URL,
		Words: cfg.MaxWords,
		Links: cfg.MaxLinks,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" optional:"" help:"Article URL; prompts for URLs when omitted"`
	Config    string        `short:"c" env:"WIKISECT_CONFIG" help:"Path to a YAML config file"`
	StopWords string        `short:"s" name:"stop-words" env:"WIKISECT_STOP_WORDS" help:"Whitespace-separated stop-word file"`
	Words     string        `short:"w" env:"WIKISECT_WORDS" help:"Words shown per section (number or \"all\", default 10)"`
	Links     string        `short:"l" env:"WIKISECT_LINKS" help:"Links shown per section (number or \"all\", default all)"`
	Format    string        `short:"f" env:"WIKISECT_FORMAT" help:"Output format: text, markdown, or json"`
	Timeout   time.Duration `short:"t" env:"WIKISECT_TIMEOUT" help:"Fetch timeout per page (default 10s)"`
	Strict    bool          `help:"Drop tokens without a run of two letters, such as 1990s"`
	Verbose   bool          `short:"v" help:"Log fetch and parse details to stderr"`
}

// apply overrides cfg with the flags that were set.
func (c *CLI) apply(cfg *wikisect.Config) error {
	if c.StopWords != "" {
		cfg.StopWordsPath = c.StopWords
	}
	if c.Words != "" {
		limit, err := wikisect.ParseLimit(c.Words)
		if err != nil {
			return fmt.Errorf("--words: %s", describe(err))
		}
		cfg.MaxWords = limit
	}
	if c.Links != "" {
		limit, err := wikisect.ParseLimit(c.Links)
		if err != nil {
			return fmt.Errorf("--links: %s", describe(err))
		}
		cfg.MaxLinks = limit
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Strict {
		cfg.StrictNormalization = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %s", describe(err))
	}
	return nil
}

func loadConfig(explicit string) (*wikisect.Config, error) {
	path := yaml.FindConfigFile(explicit)
	if path == "" {
		if explicit != "" {
			return nil, fmt.Errorf("config file %q not found", explicit)
		}
		cfg := wikisect.DefaultConfig()
		return &cfg, nil
	}

	cfg, err := yaml.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %s", path, describe(err))
	}
	return cfg, nil
}

// describe returns the message of an application error, or the error text
// for anything else.
func describe(err error) string {
	if wikisect.ErrorCode(err) == wikisect.EINTERNAL {
		return err.Error()
	}
	return wikisect.ErrorMessage(err)
}

func reportWriter(format string) wikisect.ReportWriter {
	switch format {
	case wikisect.FormatMarkdown:
		return markdown.NewReportWriter()
	case wikisect.FormatJSON:
		return wikisect.NewJSONWriter(wikisect.WithIndent("  "))
	default:
		return wikisect.NewTextWriter()
	}
}
