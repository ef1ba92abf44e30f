// Package app wires the fetch, extract, flatten and output stages into the
// single-article pipeline that the subcommands drive.
package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"pravenc_scrap/internal/article"
	"pravenc_scrap/internal/fetch"
	"pravenc_scrap/internal/flatten"
	"pravenc_scrap/internal/frontmatter"
	"pravenc_scrap/internal/markdown"
	"pravenc_scrap/internal/output"

	"github.com/PuerkitoBio/goquery"
)

const DefaultOutputDir = "articles"

type Options struct {
	URL       string
	OutputDir string
	Timeout   time.Duration
	UserAgent string
	UseCache  bool
	Quiet     bool
	Selectors article.Selectors
}

func normalizeOptions(opts Options) (Options, error) {
	if strings.TrimSpace(opts.URL) == "" {
		return opts, fmt.Errorf("url is required")
	}
	if opts.Timeout == 0 {
		opts.Timeout = fetch.DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = fetch.DefaultUserAgent
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Selectors == (article.Selectors{}) {
		opts.Selectors = article.DefaultSelectors()
	}
	return opts, nil
}

// Run scrapes a single article and reports the written path on stdout.
func Run(ctx context.Context, opts Options) error {
	path, err := Scrape(ctx, opts)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Printf("Saved: %s\n", path)
	}
	return nil
}

// Scrape fetches one article page and writes it as Markdown with YAML front
// matter. It returns the path of the written file.
func Scrape(ctx context.Context, opts Options) (string, error) {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return "", err
	}

	html, err := fetchPage(ctx, opts)
	if err != nil {
		return "", err
	}

	return ScrapeHTML(opts, html)
}

// ScrapeHTML runs the extraction pipeline over already-fetched HTML. Split out
// from Scrape so batch and follow modes can reuse their own fetch handling.
func ScrapeHTML(opts Options, html string) (string, error) {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	fields, err := article.Extract(doc, opts.Selectors)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", opts.URL, err)
	}

	base, err := url.Parse(opts.URL)
	if err != nil {
		return "", fmt.Errorf("parse url %s: %w", opts.URL, err)
	}
	article.AbsolutizeURLs(fields.Body, base)

	conv := markdown.NewConverter()
	body := flatten.New(conv, opts.Selectors).Flatten(fields.Body)

	fm, err := frontmatter.Render(frontmatter.FrontMatter{
		ArticleTitle: fields.Title,
		Author:       fields.Author,
		Volume:       fields.Volume,
		PageNumbers:  fields.PageNumbers,
		SourceURL:    opts.URL,
		DownloadedAt: frontmatter.Timestamp(time.Now()),
	})
	if err != nil {
		return "", fmt.Errorf("render front matter: %w", err)
	}

	return output.WriteArticle(opts.OutputDir, output.BaseName(opts.URL), fm, body)
}

func fetchPage(ctx context.Context, opts Options) (string, error) {
	if opts.UseCache {
		cachePath := fetch.CachePath(opts.URL)
		if content, err := os.ReadFile(cachePath); err == nil {
			if !opts.Quiet {
				fmt.Printf("Using cached copy of %s\n", opts.URL)
			}
			return string(content), nil
		}
	}

	html, err := fetch.Fetch(ctx, fetch.Options{
		URL:       opts.URL,
		Timeout:   opts.Timeout,
		UserAgent: opts.UserAgent,
	})
	if err != nil {
		return "", err
	}

	if opts.UseCache {
		if err := fetch.SaveToCache(fetch.CachePath(opts.URL), html); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cache %s: %v\n", opts.URL, err)
		}
	}
	return html, nil
}
