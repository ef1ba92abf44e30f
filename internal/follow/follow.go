// Package follow walks a chain of articles through their "next article"
// links until a terminal condition is reached.
package follow

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pravenc_scrap/internal/fetch"

	"github.com/PuerkitoBio/goquery"
)

// State is the follower's terminal (or running) condition.
type State int

const (
	Running State = iota
	StoppedNoNext
	StoppedNotFound
	StoppedError
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case StoppedNoNext:
		return "no next link"
	case StoppedNotFound:
		return "document not found"
	case StoppedError:
		return "error"
	default:
		return "unknown"
	}
}

// NotFoundMarker is the literal text of the site's "document not found" page.
// Reaching it ends the walk as a normal terminal state, not an error.
const NotFoundMarker = "Документ не найден"

type Options struct {
	StartURL     string
	NextSelector string
	Delay        time.Duration // fixed wait between fetches regardless of outcome
	MaxArticles  int           // 0 = unbounded

	// Fetch retrieves a page; Save runs the article pipeline over fetched
	// HTML and returns the written path.
	Fetch func(ctx context.Context, url string) (string, error)
	Save  func(ctx context.Context, url, html string) (string, error)
}

type Result struct {
	Articles int
	State    State
	Err      error
}

// Run fetches and saves articles starting at StartURL, following the next
// link of each page.
func Run(ctx context.Context, opts Options) Result {
	res := Result{State: Running}
	current := opts.StartURL
	for {
		if opts.MaxArticles > 0 && res.Articles >= opts.MaxArticles {
			res.State = StoppedNoNext
			return res
		}

		html, err := opts.Fetch(ctx, current)
		if err != nil {
			if fetch.IsNotFound(err) {
				res.State = StoppedNotFound
			} else {
				res.State = StoppedError
				res.Err = err
			}
			return res
		}
		if strings.Contains(html, NotFoundMarker) {
			res.State = StoppedNotFound
			return res
		}

		path, err := opts.Save(ctx, current, html)
		if err != nil {
			res.State = StoppedError
			res.Err = err
			return res
		}
		res.Articles++
		fmt.Printf("[%d] Saved: %s\n", res.Articles, path)

		next := nextURL(html, current, opts.NextSelector)
		if next == "" {
			res.State = StoppedNoNext
			return res
		}
		if err := fetch.Wait(ctx, opts.Delay); err != nil {
			res.State = StoppedError
			res.Err = err
			return res
		}
		current = next
	}
}

// nextURL locates the next-article link and resolves it against the current
// page URL. Empty when absent or unparseable.
func nextURL(html, pageURL, selector string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	href, ok := doc.Find(selector).First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
