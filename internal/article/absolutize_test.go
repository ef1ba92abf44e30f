package article_test

import (
	"net/url"
	"strings"
	"testing"

	"pravenc_scrap/internal/article"
)

func firstAttr(t *testing.T, html, selector, attr string) string {
	t.Helper()
	doc := parseDoc(t, html)
	base, err := url.Parse("https://pravenc.ru/text/71893.html")
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}
	sel := doc.Find("body")
	article.AbsolutizeURLs(sel, base)
	val, ok := sel.Find(selector).First().Attr(attr)
	if !ok {
		t.Fatalf("attribute %s not found for %s", attr, selector)
	}
	return val
}

func TestAbsolutizeURLs(t *testing.T) {
	cases := []struct {
		name     string
		html     string
		selector string
		attr     string
		want     string
	}{
		{
			name:     "root relative href",
			html:     `<a href="/text/123.html">x</a>`,
			selector: "a",
			attr:     "href",
			want:     "https://pravenc.ru/text/123.html",
		},
		{
			name:     "document relative href",
			html:     `<a href="123.html">x</a>`,
			selector: "a",
			attr:     "href",
			want:     "https://pravenc.ru/text/123.html",
		},
		{
			name:     "absolute left alone",
			html:     `<a href="https://example.com/a">x</a>`,
			selector: "a",
			attr:     "href",
			want:     "https://example.com/a",
		},
		{
			name:     "protocol relative",
			html:     `<img src="//cdn.pravenc.ru/i.png">`,
			selector: "img",
			attr:     "src",
			want:     "https://cdn.pravenc.ru/i.png",
		},
		{
			name:     "fragment stays on page",
			html:     `<a href="#refs">x</a>`,
			selector: "a",
			attr:     "href",
			want:     "https://pravenc.ru/text/71893.html#refs",
		},
		{
			name:     "mailto untouched",
			html:     `<a href="mailto:ed@pravenc.ru">x</a>`,
			selector: "a",
			attr:     "href",
			want:     "mailto:ed@pravenc.ru",
		},
		{
			name:     "space wrapped in angle brackets",
			html:     `<img src="/char/26526/x010 x0a2/image.png">`,
			selector: "img",
			attr:     "src",
			want:     "<https://pravenc.ru/char/26526/x010 x0a2/image.png>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := firstAttr(t, "<html><body>"+tc.html+"</body></html>", tc.selector, tc.attr)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAbsolutizeSpacePreserved(t *testing.T) {
	got := firstAttr(t,
		`<html><body><img src="/char/26526/x010 x0a2/image.png"></body></html>`,
		"img", "src")
	if strings.Contains(got, "%20") {
		t.Fatalf("space must stay literal, got %q", got)
	}
}

func TestAbsolutizeIdempotent(t *testing.T) {
	doc := parseDoc(t, `<html><body><img src="/char/26526/x010 x0a2/image.png"><a href="/text/1.html">x</a></body></html>`)
	base, _ := url.Parse("https://pravenc.ru/text/71893.html")
	sel := doc.Find("body")
	article.AbsolutizeURLs(sel, base)
	first, _ := sel.Find("img").First().Attr("src")

	article.AbsolutizeURLs(sel, base)
	second, _ := sel.Find("img").First().Attr("src")
	if first != second {
		t.Fatalf("second pass changed value: %q vs %q", first, second)
	}
	href, _ := sel.Find("a").First().Attr("href")
	if href != "https://pravenc.ru/text/1.html" {
		t.Fatalf("plain href corrupted on second pass: %q", href)
	}
}
