// Package output names and writes the files the scraper produces.
package output

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	articleIDRe = regexp.MustCompile(`/(\d+)(?:\.html)?$`)
	wsRunRe     = regexp.MustCompile(`\s+`)
	slugStripRe = regexp.MustCompile(`[^a-z0-9\-._]`)
	dashRunRe   = regexp.MustCompile(`-+`)
)

// BaseName derives the output file name (without extension) from an article
// URL: the trailing numeric article id when present, otherwise a sanitized
// slug of the last path segment.
func BaseName(rawURL string) string {
	if m := articleIDRe.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	last := strings.TrimRight(rawURL, "/")
	if i := strings.LastIndex(last, "/"); i >= 0 {
		last = last[i+1:]
	}
	if i := strings.Index(last, "?"); i >= 0 {
		last = last[:i]
	}
	last = strings.ReplaceAll(last, ".html", "")
	return sanitizeFileName(last)
}

func sanitizeFileName(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = wsRunRe.ReplaceAllString(text, "-")
	text = slugStripRe.ReplaceAllString(text, "")
	text = dashRunRe.ReplaceAllString(text, "-")
	if len(text) > 120 {
		text = text[:120]
	}
	if text == "" {
		return "article"
	}
	return text
}

// WriteArticle writes one Markdown document: front matter, a blank line, the
// body and a trailing newline. Returns the written path.
func WriteArticle(outputDir, baseName, frontMatter, body string) (string, error) {
	if outputDir == "" {
		outputDir = "articles"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, baseName+".md")
	var b strings.Builder
	b.WriteString(frontMatter)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// WriteLines writes newline-separated values (URL lists, hex-token lists).
func WriteLines(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0600)
}
