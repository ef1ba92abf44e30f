// Package listurls implements the listing-page crawl subcommand: it walks the
// numbered listing pages and writes the discovered article URLs to a file.
package listurls

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"pravenc_scrap/internal/cli"
	"pravenc_scrap/internal/config"
	"pravenc_scrap/internal/fetch"
	"pravenc_scrap/internal/listing"
	"pravenc_scrap/internal/output"
)

const DefaultBaseURL = "https://pravenc.ru"

type options struct {
	BaseURL    string
	StartPage  int
	EndPage    int
	DelaySec   float64
	TimeoutSec int
	UserAgent  string
	OutFile    string
	Quiet      bool
}

func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	urls, stats, err := listing.Crawl(ctx, listing.Options{
		BaseURL:   opts.BaseURL,
		StartPage: opts.StartPage,
		EndPage:   opts.EndPage,
		Delay:     time.Duration(opts.DelaySec * float64(time.Second)),
		UserAgent: opts.UserAgent,
		Timeout:   time.Duration(opts.TimeoutSec) * time.Second,
		Quiet:     opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := output.WriteLines(opts.OutFile, urls); err != nil {
		return fmt.Errorf("write url file: %w", err)
	}

	fmt.Printf("Fetched %d pages, found %d unique URLs (%d duplicates)\n",
		stats.PagesFetched, stats.URLsFound, stats.Duplicates)
	fmt.Printf("Saved: %s\n", opts.OutFile)
	return nil
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	configStr := ""
	fs.StringVar(&configStr, "config", "", "Path to JSON config file")
	fs.StringVar(&opts.BaseURL, "base-url", DefaultBaseURL, "Site root URL")
	fs.IntVar(&opts.StartPage, "start", 1, "First listing page")
	fs.IntVar(&opts.EndPage, "end", 1, "Last listing page")
	fs.Float64Var(&opts.DelaySec, "delay", 1, "Delay seconds between pages")
	fs.IntVar(&opts.TimeoutSec, "timeout", int(fetch.DefaultTimeout/time.Second), "Timeout seconds")
	fs.StringVar(&opts.UserAgent, "user-agent", fetch.DefaultUserAgent, "User-Agent header")
	fs.StringVar(&opts.OutFile, "out", "article_urls.txt", "Output file for URLs")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Suppress progress output")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if configStr != "" {
		cfg, err := config.Load(configStr)
		if err != nil {
			return options{}, err
		}
		if !cli.WasSet(fs, "base-url") && cfg.BaseURL != "" {
			opts.BaseURL = cfg.BaseURL
		}
		if !cli.WasSet(fs, "delay") && cfg.DelaySeconds > 0 {
			opts.DelaySec = cfg.DelaySeconds
		}
		if !cli.WasSet(fs, "timeout") && cfg.TimeoutSeconds > 0 {
			opts.TimeoutSec = cfg.TimeoutSeconds
		}
		if !cli.WasSet(fs, "user-agent") && cfg.UserAgent != "" {
			opts.UserAgent = cfg.UserAgent
		}
	}
	return opts, nil
}
