package listing_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pravenc_scrap/internal/listing"
)

func listingServer(t *testing.T, pages map[int][]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/list.html" {
			http.NotFound(w, r)
			return
		}
		var page int
		fmt.Sscanf(r.URL.Query().Get("t_page"), "%d", &page)
		links, ok := pages[page]
		if !ok {
			http.NotFound(w, r)
			return
		}
		var b strings.Builder
		b.WriteString("<html><body>")
		for _, href := range links {
			fmt.Fprintf(&b, `<span class="article_title"><a href="%s">x</a></span>`, href)
		}
		b.WriteString("</body></html>")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(b.String()))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCrawlCollectsAndDeduplicates(t *testing.T) {
	server := listingServer(t, map[int][]string{
		1: {"/text/1.html", "/text/2.html"},
		2: {"/text/2.html", "/text/3.html"},
	})

	urls, stats, err := listing.Crawl(context.Background(), listing.Options{
		BaseURL:   server.URL,
		StartPage: 1,
		EndPage:   2,
		Quiet:     true,
	})
	if err != nil {
		t.Fatalf("crawl: %v", err)
	}

	want := []string{
		server.URL + "/text/1.html",
		server.URL + "/text/2.html",
		server.URL + "/text/3.html",
	}
	if len(urls) != len(want) {
		t.Fatalf("got %d urls, want %d: %v", len(urls), len(want), urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
	if stats.PagesFetched != 2 || stats.URLsFound != 3 || stats.Duplicates != 1 {
		t.Fatalf("stats: %+v", stats)
	}
}

func TestCrawlStopsCleanlyOn404(t *testing.T) {
	server := listingServer(t, map[int][]string{
		1: {"/text/1.html"},
	})

	urls, stats, err := listing.Crawl(context.Background(), listing.Options{
		BaseURL:   server.URL,
		StartPage: 1,
		EndPage:   5,
		Quiet:     true,
	})
	if err != nil {
		t.Fatalf("404 must end the crawl without error, got: %v", err)
	}
	if len(urls) != 1 {
		t.Fatalf("got %v", urls)
	}
	if stats.PagesFetched != 1 {
		t.Fatalf("stats: %+v", stats)
	}
}

func TestCrawlRequiresBaseURL(t *testing.T) {
	if _, _, err := listing.Crawl(context.Background(), listing.Options{}); err == nil {
		t.Fatal("expected error for missing base url")
	}
}

func TestPageURL(t *testing.T) {
	got := listing.PageURL("https://pravenc.ru/", 3)
	if got != "https://pravenc.ru/list.html?t_page=3" {
		t.Fatalf("got %q", got)
	}
}
