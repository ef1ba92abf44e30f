package flatten_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"pravenc_scrap/internal/article"
	"pravenc_scrap/internal/flatten"
	"pravenc_scrap/internal/markdown"
)

func flattenBody(t *testing.T, bodyHTML string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div class="article_text">` + bodyHTML + `</div></body></html>`))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	f := flatten.New(markdown.NewConverter(), article.DefaultSelectors())
	return f.Flatten(doc.Find("div.article_text"))
}

func TestFlattenPlainContent(t *testing.T) {
	got := flattenBody(t, `<p>Первый абзац.</p><p>Второй абзац.</p>`)
	want := "Первый абзац.\n\nВторой абзац."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReferenceHeadingLevels(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no headings defaults to level 1",
			body: `<p>Текст.</p><div class="refs">Лит.: Труды.</div>`,
			want: "\n\n# Литература\n\n",
		},
		{
			name: "subordinate to smallest heading",
			body: `<h2>Житие</h2><p>Текст.</p><h3>Почитание</h3><div class="refs">Лит.: Труды.</div>`,
			want: "\n\n### Литература\n\n",
		},
		{
			name: "clamped at six",
			body: `<h6>Житие</h6><div class="refs">Лит.: Труды.</div>`,
			want: "\n\n###### Литература\n\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := flattenBody(t, tc.body)
			if !strings.Contains(got, tc.want) {
				t.Fatalf("missing %q in:\n%s", tc.want, got)
			}
		})
	}
}

func TestReferenceCategories(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		heading string
		content string
	}{
		{
			name:    "works",
			body:    `<div class="refs">Соч.: Слова и поучения.</div>`,
			heading: "# Сочинения",
			content: "Слова и поучения.",
		},
		{
			name:    "sources",
			body:    `<div class="refs">Ист.: Жития святых.</div>`,
			heading: "# Источники",
			content: "Жития святых.",
		},
		{
			name:    "literature",
			body:    `<div class="refs">Лит.: Иванов И. Труд.</div>`,
			heading: "# Литература",
			content: "Иванов И. Труд.",
		},
		{
			name:    "unprefixed defaults to literature",
			body:    `<div class="refs">Иванов И. Труд.</div>`,
			heading: "# Литература",
			content: "Иванов И. Труд.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := flattenBody(t, tc.body)
			if !strings.Contains(got, tc.heading) {
				t.Fatalf("missing heading %q in:\n%s", tc.heading, got)
			}
			if !strings.Contains(got, tc.content) {
				t.Fatalf("missing content %q in:\n%s", tc.content, got)
			}
		})
	}
}

func TestReferencePrefixStrippedOnce(t *testing.T) {
	got := flattenBody(t, `<div class="refs">Лит.: Обзор Лит.: примечание.</div>`)
	if strings.Count(got, "Лит.:") != 1 {
		t.Fatalf("only the leading prefix may be stripped, got:\n%s", got)
	}
}

func TestReferenceInsideContainer(t *testing.T) {
	got := flattenBody(t, `<div><p>До ссылок.</p><div class="refs">Лит.: Труды.</div><p>После ссылок.</p></div>`)

	before := strings.Index(got, "До ссылок.")
	heading := strings.Index(got, "# Литература")
	after := strings.Index(got, "После ссылок.")
	if before < 0 || heading < 0 || after < 0 {
		t.Fatalf("missing fragment in:\n%s", got)
	}
	if !(before < heading && heading < after) {
		t.Fatalf("document order not preserved in:\n%s", got)
	}
}

func TestEmptyReferenceBlockKeepsHeading(t *testing.T) {
	got := flattenBody(t, `<p>Текст.</p><div class="refs">Лит.:</div>`)
	if !strings.HasSuffix(got, "# Литература") {
		t.Fatalf("expected bare heading at end, got:\n%s", got)
	}
}

func TestDroppedNodes(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		absent string
	}{
		{
			name:   "toc container",
			body:   `<div class="toc">Содержание статьи</div><p>Текст.</p>`,
			absent: "Содержание",
		},
		{
			name:   "toc recognized by text",
			body:   `<div>Содержание: раздел первый</div><p>Текст.</p>`,
			absent: "раздел первый",
		},
		{
			name:   "duplicated body title",
			body:   `<h1 class="article_title">АВРААМИЙ</h1><p>Текст.</p>`,
			absent: "АВРААМИЙ",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := flattenBody(t, tc.body)
			if strings.Contains(got, tc.absent) {
				t.Fatalf("%q should be dropped, got:\n%s", tc.absent, got)
			}
			if !strings.Contains(got, "Текст.") {
				t.Fatalf("surrounding content lost:\n%s", got)
			}
		})
	}
}
