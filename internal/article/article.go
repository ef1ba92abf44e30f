// Package article extracts the structured parts of an encyclopedia article
// page: title, authors, volume/page metadata and the body subtree.
package article

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrMissingContent is returned when the body container is absent. Fatal for
// the article being processed, not for a surrounding batch or crawl.
var ErrMissingContent = errors.New("article body container not found")

// Selectors identify the structural parts of an article page. The zero value
// is not usable; start from DefaultSelectors and override via config.
type Selectors struct {
	Title     string
	BodyTitle string // title duplicated inside the body, dropped on flatten
	Author    string
	Body      string
	Info      string
	Refs      string
	TOC       string
	Next      string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Title:     `h1.article_title[itemprop="title"]`,
		BodyTitle: "h1.article_title",
		Author:    "div.author",
		Body:      "div.article_text",
		Info:      "div.info",
		Refs:      "div.refs",
		TOC:       "div.toc",
		Next:      "a.next",
	}
}

// Article is the finished record written to disk.
type Article struct {
	Title        string
	Author       string
	Volume       string
	PageNumbers  string
	BodyMarkdown string
	SourceURL    string
	DownloadedAt time.Time
}

// Fields holds the extracted page parts before the body is flattened. Body
// points into doc's parse tree and is discarded with it.
type Fields struct {
	Title       string
	Author      string
	Volume      string
	PageNumbers string
	Body        *goquery.Selection
}

var pageRangeRe = regexp.MustCompile(`С\.\s*([0-9,\s\-]+)`)

// Extract locates the title, author, body and volume/page metadata nodes.
func Extract(doc *goquery.Document, sel Selectors) (*Fields, error) {
	body := doc.Find(sel.Body).First()
	if body.Length() == 0 {
		return nil, ErrMissingContent
	}

	fields := &Fields{
		Title:  strings.TrimSpace(doc.Find(sel.Title).First().Text()),
		Author: joinAuthors(doc.Find(sel.Author)),
		Body:   body,
	}

	info := doc.Find(sel.Info).First()
	if info.Length() > 0 {
		fields.Volume = strings.TrimSpace(info.Find("a").First().Text())
		if m := pageRangeRe.FindStringSubmatch(info.Text()); m != nil {
			fields.PageNumbers = strings.TrimSpace(m[1])
		}
	}

	return fields, nil
}

// joinAuthors splits every author node on commas and joins the distinct names
// in first-seen order. Dedup spans all nodes: the same name credited on two
// nodes appears once.
func joinAuthors(nodes *goquery.Selection) string {
	seen := map[string]struct{}{}
	names := []string{}
	nodes.Each(func(_ int, s *goquery.Selection) {
		for _, name := range strings.Split(s.Text(), ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	})
	return strings.Join(names, ", ")
}
