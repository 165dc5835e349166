package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/wikisect"
	"github.com/google/uuid"
)

// Prompts shown in interactive mode.
const (
	URLPrompt      = "Please provide a valid Wikipedia page url: "
	ContinuePrompt = "do you want to provide another URL? (Y/N): "
	Farewell       = "Goodbye"
)

// PageScraper turns a URL into a sectioned page.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*wikisect.Page, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Scraper PageScraper
	Writer  wikisect.ReportWriter
}

// ScrapeCmd reports on one URL, or prompts for URLs until the user stops.
type ScrapeCmd struct {
	URL   string
	Words wikisect.Limit
	Links wikisect.Limit
}

// Run executes the scrape command. With a URL it runs once and returns the
// fetch error, if any. Without one it loops over URLs read from Stdin;
// failures are reported and the loop continues.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.URL != "" {
		return c.runOnce(deps, c.URL)
	}
	return c.runInteractive(deps)
}

func (c *ScrapeCmd) runInteractive(deps *Dependencies) error {
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, URLPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			break
		}

		if url := strings.TrimSpace(scanner.Text()); url != "" {
			// Errors were already reported; keep prompting.
			_ = c.runOnce(deps, url)
		}

		fmt.Fprint(deps.Stdout, ContinuePrompt)
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			break
		}
		if !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			break
		}
	}

	fmt.Fprintln(deps.Stdout, Farewell)
	return scanner.Err()
}

func (c *ScrapeCmd) runOnce(deps *Dependencies, url string) (err error) {
	var page *wikisect.Page
	defer func(begin time.Time) {
		sections := 0
		if page != nil {
			sections = len(page.Sections)
		}
		deps.logger().Info("scrape",
			"run", uuid.NewString(),
			"url", url,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	page, err = deps.Scraper.Scrape(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikisect.ErrorMessage(err))
		return err
	}

	if err := deps.Writer.WritePage(deps.Stdout, page, c.Words, c.Links); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing report: %v\n", err)
		return err
	}
	return nil
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
