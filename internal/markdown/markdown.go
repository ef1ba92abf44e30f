// Package markdown converts article HTML to Markdown. The converter is
// restricted to the tag vocabulary that actually occurs in article bodies
// (paragraphs, breaks, links, images, headings, lists, emphasis, quotes,
// code); anything else degrades to its text content.
package markdown

import (
	"strings"

	htmltomd "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

type Converter struct {
	md *htmltomd.Converter
}

func NewConverter() *Converter {
	// Commonmark defaults match the archive's existing files: ATX headings,
	// "-" bullets. Links are absolutized upstream, so no domain is set.
	conv := htmltomd.NewConverter("", true, nil)
	// hr is the one default rule outside the article vocabulary; override it
	// so the element degrades to its text content like any unknown tag.
	conv.AddRules(htmltomd.Rule{
		Filter: []string{"hr"},
		Replacement: func(content string, _ *goquery.Selection, _ *htmltomd.Options) *string {
			return htmltomd.String(content)
		},
	})
	return &Converter{md: conv}
}

// ConvertSelection renders one parsed element (and its subtree) as Markdown.
func (c *Converter) ConvertSelection(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(c.md.Convert(sel))
}
