package cli

import (
	"flag"
	"time"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/article"
	"pravenc_scrap/internal/config"
	"pravenc_scrap/internal/fetch"
)

// DefaultURL is scraped when no URL argument is given.
const DefaultURL = "https://pravenc.ru/text/71893.html"

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

// ParseArgs builds single-article options from command-line arguments.
// Precedence per setting: flag, then config file, then built-in default.
func ParseArgs(args []string) (app.Options, error) {
	parsed, err := parseFlags(args)
	if err != nil {
		return app.Options{}, ExitError{Code: 2, Err: err}
	}

	cfg, err := loadConfig(parsed.configStr)
	if err != nil {
		return app.Options{}, err
	}

	applyConfigDefaults(&parsed, cfg)
	return buildOptions(parsed, cfg), nil
}

type parsedFlags struct {
	urlStr    string
	configStr string
	outputDir stringFlag
	timeout   intFlag
	userAgent stringFlag
	useCache  bool
	quiet     bool
}

func parseFlags(args []string) (parsedFlags, error) {
	fs := flag.NewFlagSet("pravenc_scrap", flag.ContinueOnError)
	parsed := parsedFlags{}

	fs.StringVar(&parsed.urlStr, "url", "", "Article URL to scrape")
	fs.StringVar(&parsed.configStr, "config", "", "Path to JSON config file")
	fs.Var(&parsed.outputDir, "output-dir", "Output directory (default: articles)")
	parsed.timeout.Value = int(fetch.DefaultTimeout / time.Second)
	fs.Var(&parsed.timeout, "timeout", "Timeout seconds")
	fs.Var(&parsed.userAgent, "user-agent", "User-Agent header")
	fs.BoolVar(&parsed.useCache, "cache", false, "Use disk cache for HTML content")
	fs.BoolVar(&parsed.quiet, "quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return parsed, err
	}

	if parsed.urlStr == "" && fs.NArg() > 0 {
		parsed.urlStr = fs.Arg(0)
	}

	return parsed, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	return config.Load(path)
}

func applyConfigDefaults(parsed *parsedFlags, cfg config.Config) {
	if parsed.urlStr == "" && cfg.URL != "" {
		parsed.urlStr = cfg.URL
	}
	if !parsed.outputDir.WasSet && cfg.OutputDir != "" {
		parsed.outputDir.Value = cfg.OutputDir
	}
	if !parsed.timeout.WasSet && cfg.TimeoutSeconds > 0 {
		parsed.timeout.Value = cfg.TimeoutSeconds
	}
	if !parsed.userAgent.WasSet && cfg.UserAgent != "" {
		parsed.userAgent.Value = cfg.UserAgent
	}
}

// SelectorsFromConfig overlays config selector overrides on the defaults.
func SelectorsFromConfig(cfg config.Config) article.Selectors {
	sel := article.DefaultSelectors()
	if cfg.TitleSelector != "" {
		sel.Title = cfg.TitleSelector
	}
	if cfg.BodyTitleSelector != "" {
		sel.BodyTitle = cfg.BodyTitleSelector
	}
	if cfg.AuthorSelector != "" {
		sel.Author = cfg.AuthorSelector
	}
	if cfg.BodySelector != "" {
		sel.Body = cfg.BodySelector
	}
	if cfg.InfoSelector != "" {
		sel.Info = cfg.InfoSelector
	}
	if cfg.RefsSelector != "" {
		sel.Refs = cfg.RefsSelector
	}
	if cfg.TOCSelector != "" {
		sel.TOC = cfg.TOCSelector
	}
	if cfg.NextSelector != "" {
		sel.Next = cfg.NextSelector
	}
	return sel
}

func buildOptions(parsed parsedFlags, cfg config.Config) app.Options {
	if parsed.urlStr == "" {
		parsed.urlStr = DefaultURL
	}
	return app.Options{
		URL:       parsed.urlStr,
		OutputDir: parsed.outputDir.Value,
		Timeout:   time.Duration(parsed.timeout.Value) * time.Second,
		UserAgent: parsed.userAgent.Value,
		UseCache:  parsed.useCache,
		Quiet:     parsed.quiet,
		Selectors: SelectorsFromConfig(cfg),
	}
}
