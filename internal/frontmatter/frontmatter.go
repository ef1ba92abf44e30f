// Package frontmatter serializes article metadata as the YAML preamble of the
// output document.
package frontmatter

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the key-ordered metadata block. Field order here is the key
// order in the output; empty values are omitted entirely, never emitted as
// null.
type FrontMatter struct {
	ArticleTitle string `yaml:"article_title,omitempty"`
	Author       string `yaml:"author,omitempty"`
	Volume       string `yaml:"volume,omitempty"`
	PageNumbers  string `yaml:"page_numbers,omitempty"`
	SourceURL    string `yaml:"source_url,omitempty"`
	DownloadedAt string `yaml:"downloaded_at,omitempty"`
}

// Render returns the metadata as a fenced YAML block ending in a newline.
func Render(fm FrontMatter) (string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}
	return "---\n" + strings.TrimRight(string(data), "\n") + "\n---\n", nil
}

// Timestamp formats a download time at second precision in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
