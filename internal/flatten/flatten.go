// Package flatten linearizes an article body into a single Markdown document,
// pulling embedded bibliographic reference blocks out into their own sections.
package flatten

import (
	"strings"

	"pravenc_scrap/internal/article"
	"pravenc_scrap/internal/markdown"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// refCategory pairs a recognized literature prefix with the section title it
// produces. Tested in order; the triggering prefix is stripped from content.
type refCategory struct {
	prefix string
	title  string
}

var refCategories = []refCategory{
	{prefix: "Соч.:", title: "Сочинения"},
	{prefix: "Ист.:", title: "Источники"},
	{prefix: "Лит.:", title: "Литература"},
}

// defaultRefTitle applies when no prefix matches.
const defaultRefTitle = "Литература"

// maxRefDepth bounds how deep inside plain containers reference blocks are
// still pulled out into their own sections. Blocks nested deeper fall through
// to generic conversion.
const maxRefDepth = 1

// tocMarker starts the text of table-of-contents containers, which are
// dropped entirely.
const tocMarker = "Содержание"

type Flattener struct {
	conv *markdown.Converter
	sel  article.Selectors
}

func New(conv *markdown.Converter, sel article.Selectors) *Flattener {
	return &Flattener{conv: conv, sel: sel}
}

// Flatten walks the body's direct children in document order and joins the
// emitted Markdown fragments with blank lines.
func (f *Flattener) Flatten(body *goquery.Selection) string {
	refLevel := refHeadingLevel(body)
	frags := []string{}
	body.Children().Each(func(_ int, s *goquery.Selection) {
		frags = append(frags, f.flattenNode(s, refLevel)...)
	})
	return strings.TrimSpace(strings.Join(frags, "\n\n"))
}

func (f *Flattener) flattenNode(s *goquery.Selection, refLevel int) []string {
	switch {
	case f.dropped(s):
		return nil
	case s.Is(f.sel.Refs):
		return []string{f.referenceSection(s, refLevel)}
	case maxRefDepth > 0 && s.Find(f.sel.Refs).Length() > 0:
		return f.flattenContainer(s, refLevel)
	default:
		md := f.conv.ConvertSelection(s)
		if md == "" {
			return nil
		}
		return []string{md}
	}
}

// flattenContainer handles a plain container whose children include reference
// blocks: sibling content accumulates into a pending buffer that is flushed
// as one fragment whenever a reference block is reached. Reference blocks
// nested deeper than one container are not pulled out (maxRefDepth).
func (f *Flattener) flattenContainer(s *goquery.Selection, refLevel int) []string {
	frags := []string{}
	pending := []string{}
	flush := func() {
		if len(pending) > 0 {
			frags = append(frags, strings.Join(pending, "\n\n"))
			pending = nil
		}
	}
	s.Children().Each(func(_ int, child *goquery.Selection) {
		if f.dropped(child) {
			return
		}
		if child.Is(f.sel.Refs) {
			flush()
			frags = append(frags, f.referenceSection(child, refLevel))
			return
		}
		if md := f.conv.ConvertSelection(child); md != "" {
			pending = append(pending, md)
		}
	})
	flush()
	return frags
}

// dropped reports whether a node is excluded from output: table-of-contents
// containers and the title duplicated inside the body (already in metadata).
func (f *Flattener) dropped(s *goquery.Selection) bool {
	if s.Is(f.sel.BodyTitle) {
		return true
	}
	if s.Is(f.sel.TOC) {
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(s.Text()), tocMarker)
}

// referenceSection emits a reference block as its own section. The heading
// level keeps inserted sections subordinate to the article's own structure.
// A block left empty after prefix stripping still emits its heading; see
// DESIGN.md before changing that.
func (f *Flattener) referenceSection(s *goquery.Selection, level int) string {
	title := defaultRefTitle
	text := strings.TrimSpace(s.Text())
	for _, cat := range refCategories {
		if strings.HasPrefix(text, cat.prefix) {
			title = cat.title
			stripPrefix(s, cat.prefix)
			break
		}
	}
	heading := strings.Repeat("#", level) + " " + title
	body := f.conv.ConvertSelection(s)
	if body == "" {
		return heading
	}
	return heading + "\n\n" + body
}

// stripPrefix removes the first occurrence of prefix from the text node that
// carries it, so rendering still happens on the (cleaned) HTML rather than on
// a rendered string.
func stripPrefix(s *goquery.Selection, prefix string) {
	for _, root := range s.Nodes {
		if stripPrefixNode(root, prefix) {
			return
		}
	}
}

func stripPrefixNode(n *html.Node, prefix string) bool {
	if n.Type == html.TextNode && strings.Contains(n.Data, prefix) {
		n.Data = strings.Replace(n.Data, prefix, "", 1)
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if stripPrefixNode(c, prefix) {
			return true
		}
	}
	return false
}

// refHeadingLevel is min(existing heading levels)+1 clamped to 6, or 1 when
// the body has no headings of its own.
func refHeadingLevel(body *goquery.Selection) int {
	min := 0
	body.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if lvl := headingLevel(goquery.NodeName(s)); lvl > 0 && (min == 0 || lvl < min) {
			min = lvl
		}
	})
	switch {
	case min == 0:
		return 1
	case min >= 6:
		return 6
	default:
		return min + 1
	}
}

func headingLevel(tag string) int {
	switch strings.ToLower(tag) {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	default:
		return 0
	}
}
