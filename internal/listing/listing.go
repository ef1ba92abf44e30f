// Package listing crawls the numbered listing pages and collects article
// URLs. The crawl is sequential: one page per request with a fixed delay, a
// 404 ends the run cleanly at the previous page's results.
package listing

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"pravenc_scrap/internal/fetch"

	"github.com/gocolly/colly/v2"
)

type Options struct {
	BaseURL   string // site root, e.g. https://pravenc.ru/
	StartPage int
	EndPage   int
	Delay     time.Duration
	UserAgent string
	Timeout   time.Duration
	Quiet     bool
}

type Stats struct {
	PagesFetched int
	URLsFound    int
	Duplicates   int
}

// PageURL builds the listing URL for one page number.
func PageURL(baseURL string, page int) string {
	return strings.TrimRight(baseURL, "/") + fmt.Sprintf("/list.html?t_page=%d", page)
}

// Crawl fetches pages StartPage..EndPage and returns the discovered article
// URLs, deduplicated with first-seen order preserved.
func Crawl(ctx context.Context, opts Options) ([]string, Stats, error) {
	if opts.BaseURL == "" {
		return nil, Stats{}, fmt.Errorf("base url is required")
	}
	if opts.StartPage <= 0 {
		opts.StartPage = 1
	}
	if opts.EndPage < opts.StartPage {
		opts.EndPage = opts.StartPage
	}
	if opts.UserAgent == "" {
		opts.UserAgent = fetch.DefaultUserAgent
	}

	c := colly.NewCollector(
		colly.UserAgent(opts.UserAgent),
		colly.DetectCharset(),
	)
	if opts.Timeout > 0 {
		c.SetRequestTimeout(opts.Timeout)
	}

	var (
		found      []string
		lastStatus int
		lastErr    error
	)
	c.OnHTML("span.article_title a[href]", func(e *colly.HTMLElement) {
		if u := e.Request.AbsoluteURL(e.Attr("href")); u != "" {
			found = append(found, u)
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		lastStatus = r.StatusCode
		lastErr = err
	})

	stats := Stats{}
	for page := opts.StartPage; page <= opts.EndPage; page++ {
		if err := ctx.Err(); err != nil {
			return dedup(found, &stats), stats, err
		}
		lastStatus, lastErr = 0, nil
		pageURL := PageURL(opts.BaseURL, page)
		before := len(found)
		if !opts.Quiet {
			fmt.Printf("[%d/%d] Fetching: %s\n", page, opts.EndPage, pageURL)
		}

		err := c.Visit(pageURL)
		if lastStatus == http.StatusNotFound {
			// End of the listing: a normal terminal condition, not an error.
			if !opts.Quiet {
				fmt.Printf("    page %d not found (404), stopping\n", page)
			}
			break
		}
		if err != nil || lastErr != nil {
			if lastErr != nil {
				err = lastErr
			}
			fmt.Fprintf(os.Stderr, "    error fetching page %d: %v\n", page, err)
			continue
		}

		stats.PagesFetched++
		if !opts.Quiet {
			fmt.Printf("    found %d articles\n", len(found)-before)
		}

		if page < opts.EndPage {
			if err := fetch.Wait(ctx, opts.Delay); err != nil {
				return dedup(found, &stats), stats, err
			}
		}
	}

	urls := dedup(found, &stats)
	return urls, stats, nil
}

func dedup(urls []string, stats *Stats) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	stats.URLsFound = len(out)
	stats.Duplicates = len(urls) - len(out)
	return out
}
