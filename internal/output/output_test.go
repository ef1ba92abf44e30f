package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pravenc_scrap/internal/output"
)

func TestBaseName(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"numeric id", "https://pravenc.ru/text/71893.html", "71893"},
		{"numeric id without extension", "https://pravenc.ru/text/71893", "71893"},
		{"slug fallback", "https://pravenc.ru/text/About.html", "about"},
		{"query stripped", "https://pravenc.ru/list.html?t_page=2", "list"},
		{"trailing slash", "https://pravenc.ru/text/71893.html/", "71893"},
		{"empty falls back", "https://pravenc.ru/%%%/", "article"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := output.BaseName(tc.url); got != tc.want {
				t.Fatalf("BaseName(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestBaseNameTruncates(t *testing.T) {
	long := "https://pravenc.ru/text/" + strings.Repeat("a", 200) + ".html"
	got := output.BaseName(long)
	if len(got) != 120 {
		t.Fatalf("expected 120 chars, got %d", len(got))
	}
}

func TestWriteArticle(t *testing.T) {
	dir := t.TempDir()
	path, err := output.WriteArticle(dir, "71893", "---\narticle_title: X\n---\n", "Текст статьи.")
	if err != nil {
		t.Fatalf("write article: %v", err)
	}
	if path != filepath.Join(dir, "71893.md") {
		t.Fatalf("unexpected path: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "---\narticle_title: X\n---\n\nТекст статьи.\n"
	if string(data) != want {
		t.Fatalf("got:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls", "article_urls.txt")
	if err := output.WriteLines(path, []string{"a", "b"}); err != nil {
		t.Fatalf("write lines: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "a\nb\n" {
		t.Fatalf("got %q", string(data))
	}
}
