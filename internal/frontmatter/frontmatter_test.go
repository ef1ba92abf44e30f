package frontmatter_test

import (
	"strings"
	"testing"
	"time"

	"pravenc_scrap/internal/frontmatter"
)

func TestRenderKeyOrder(t *testing.T) {
	fm := frontmatter.FrontMatter{
		ArticleTitle: "АВРААМИЙ",
		Author:       "И. И. Иванов",
		Volume:       "I",
		PageNumbers:  "149-150",
		SourceURL:    "https://pravenc.ru/text/71893.html",
		DownloadedAt: "2026-08-30T12:00:00Z",
	}
	got, err := frontmatter.Render(fm)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `---
article_title: АВРААМИЙ
author: И. И. Иванов
volume: I
page_numbers: 149-150
source_url: https://pravenc.ru/text/71893.html
downloaded_at: "2026-08-30T12:00:00Z"
---
`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderOmitsEmptyFields(t *testing.T) {
	got, err := frontmatter.Render(frontmatter.FrontMatter{
		ArticleTitle: "АВРААМИЙ",
		SourceURL:    "https://pravenc.ru/text/71893.html",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, absent := range []string{"author", "volume", "page_numbers", "null"} {
		if strings.Contains(got, absent) {
			t.Fatalf("empty field leaked %q:\n%s", absent, got)
		}
	}
	if !strings.HasPrefix(got, "---\n") || !strings.HasSuffix(got, "---\n") {
		t.Fatalf("missing fences:\n%s", got)
	}
}

func TestTimestampFormat(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	ts := frontmatter.Timestamp(time.Date(2026, 8, 30, 15, 4, 5, 0, loc))
	if ts != "2026-08-30T12:04:05Z" {
		t.Fatalf("got %q", ts)
	}
}
