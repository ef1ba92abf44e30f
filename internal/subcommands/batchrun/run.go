// Package batchrun implements the batch subcommand: it scrapes every URL in a
// list file, counting failures instead of aborting on them.
package batchrun

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/batch"
	"pravenc_scrap/internal/cli"
	"pravenc_scrap/internal/config"
	"pravenc_scrap/internal/fetch"
)

type options struct {
	File       string
	OutputDir  string
	DelaySec   float64
	TimeoutSec int
	UserAgent  string
	UseCache   bool
}

func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	urls, err := batch.ReadURLFile(opts.File)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no urls in %s", opts.File)
	}

	ctx := context.Background()
	summary := batch.Run(ctx, urls, time.Duration(opts.DelaySec*float64(time.Second)),
		func(ctx context.Context, url string) (string, error) {
			return app.Scrape(ctx, app.Options{
				URL:       url,
				OutputDir: opts.OutputDir,
				Timeout:   time.Duration(opts.TimeoutSec) * time.Second,
				UserAgent: opts.UserAgent,
				UseCache:  opts.UseCache,
				Quiet:     true,
			})
		})
	batch.PrintSummary(summary)

	if code := summary.ExitCode(); code != 0 {
		return cli.ExitError{
			Code: code,
			Err:  fmt.Errorf("%d of %d articles failed", summary.Failed, summary.Total),
		}
	}
	return nil
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	configStr := ""
	fs.StringVar(&configStr, "config", "", "Path to JSON config file")
	fs.StringVar(&opts.File, "file", "article_urls.txt", "File with one URL per line")
	fs.StringVar(&opts.OutputDir, "output-dir", app.DefaultOutputDir, "Output directory")
	fs.Float64Var(&opts.DelaySec, "delay", 1, "Delay seconds between articles")
	fs.IntVar(&opts.TimeoutSec, "timeout", int(fetch.DefaultTimeout/time.Second), "Timeout seconds")
	fs.StringVar(&opts.UserAgent, "user-agent", fetch.DefaultUserAgent, "User-Agent header")
	fs.BoolVar(&opts.UseCache, "cache", false, "Use disk cache for HTML content")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if configStr != "" {
		cfg, err := config.Load(configStr)
		if err != nil {
			return options{}, err
		}
		if !cli.WasSet(fs, "output-dir") && cfg.OutputDir != "" {
			opts.OutputDir = cfg.OutputDir
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
