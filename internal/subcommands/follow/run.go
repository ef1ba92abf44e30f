// Package follow implements the follow subcommand: scrape a starting article,
// then keep following each page's next-article link until the chain ends.
package follow

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/article"
	"pravenc_scrap/internal/cli"
	"pravenc_scrap/internal/config"
	"pravenc_scrap/internal/fetch"
	"pravenc_scrap/internal/follow"
)

type options struct {
	StartURL    string
	OutputDir   string
	DelaySec    float64
	TimeoutSec  int
	UserAgent   string
	MaxArticles int
	Selectors   article.Selectors
}

func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if opts.StartURL == "" {
		return fmt.Errorf("a start URL is required")
	}

	sel := opts.Selectors
	timeout := time.Duration(opts.TimeoutSec) * time.Second

	ctx := context.Background()
	res := follow.Run(ctx, follow.Options{
		StartURL:     opts.StartURL,
		NextSelector: sel.Next,
		Delay:        time.Duration(opts.DelaySec * float64(time.Second)),
		MaxArticles:  opts.MaxArticles,
		Fetch: func(ctx context.Context, url string) (string, error) {
			return fetch.Fetch(ctx, fetch.Options{
				URL:       url,
				Timeout:   timeout,
				UserAgent: opts.UserAgent,
			})
		},
		Save: func(ctx context.Context, url, html string) (string, error) {
			return app.ScrapeHTML(app.Options{
				URL:       url,
				OutputDir: opts.OutputDir,
				UserAgent: opts.UserAgent,
				Selectors: sel,
				Quiet:     true,
			}, html)
		},
	})

	fmt.Printf("Saved %d articles, stopped: %s\n", res.Articles, res.State)
	return res.Err
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("follow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{Selectors: article.DefaultSelectors()}
	configStr := ""
	fs.StringVar(&configStr, "config", "", "Path to JSON config file")
	fs.StringVar(&opts.StartURL, "url", "", "Article URL to start from")
	fs.StringVar(&opts.OutputDir, "output-dir", app.DefaultOutputDir, "Output directory")
	fs.Float64Var(&opts.DelaySec, "delay", 1, "Delay seconds between articles")
	fs.IntVar(&opts.TimeoutSec, "timeout", int(fetch.DefaultTimeout/time.Second), "Timeout seconds")
	fs.StringVar(&opts.UserAgent, "user-agent", fetch.DefaultUserAgent, "User-Agent header")
	fs.IntVar(&opts.MaxArticles, "max", 0, "Stop after this many articles (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.StartURL == "" && fs.NArg() > 0 {
		opts.StartURL = fs.Arg(0)
	}

	if configStr != "" {
		cfg, err := config.Load(configStr)
		if err != nil {
			return options{}, err
		}
		opts.Selectors = cli.SelectorsFromConfig(cfg)
		if opts.StartURL == "" && cfg.URL != "" {
			opts.StartURL = cfg.URL
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
