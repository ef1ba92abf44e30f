package cu

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// imageRefRe matches the Markdown form of a glyph image reference. The
	// angle brackets come from the absolutizer wrapping URLs that contain
	// spaces between hex tokens.
	imageRefRe = regexp.MustCompile(`!\[\]\(<https://pravenc\.ru/char/(26526|26528)/([^>]+)>\)`)

	// tokenRe matches token candidates: "x" plus 2-3 alphanumerics. Wider
	// than strict hex so that malformed tokens surface as bracketed
	// placeholders instead of passing through silently.
	tokenRe = regexp.MustCompile(`x[0-9A-Za-z]{2,3}`)
)

// Substitute replaces every glyph-image reference in content with inline
// Unicode text wrapped in a styled span, and returns the replacement count.
// Unmapped tokens become "[token]"; spacing between tokens is preserved.
func Substitute(content string, m Mapping) (string, int) {
	count := 0
	out := imageRefRe.ReplaceAllStringFunc(content, func(match string) string {
		count++
		groups := imageRefRe.FindStringSubmatch(match)
		seq := strings.TrimSpace(strings.ReplaceAll(groups[2], "/image.png", ""))
		if seq == "" {
			return ""
		}
		return `<span class="cu">` + renderSequence(seq, m) + `</span>`
	})
	return out, count
}

func renderSequence(seq string, m Mapping) string {
	var b strings.Builder
	rest := seq
	for {
		loc := tokenRe.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:loc[0]]) // interleaved literal text, usually spaces
		token := rest[loc[0]:loc[1]]
		if mapped, ok := m[token]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteString("[" + token + "]")
		}
		rest = rest[loc[1]:]
	}
	return b.String()
}

type ConvertSummary struct {
	FilesScanned   int
	FilesConverted int
	Conversions    int
}

// ConvertDir applies the mapping to every Markdown file in dir. With dryRun
// set, files are scanned and counted but not rewritten. Per-file read/write
// failures are reported and skipped.
func ConvertDir(dir string, m Mapping, dryRun bool) (ConvertSummary, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return ConvertSummary{}, err
	}
	sum := ConvertSummary{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: read %s: %v\n", file, err)
			continue
		}
		sum.FilesScanned++
		converted, n := Substitute(string(data), m)
		if n == 0 {
			continue
		}
		sum.FilesConverted++
		sum.Conversions += n
		if dryRun {
			fmt.Printf("Would convert %d glyph images in %s\n", n, filepath.Base(file))
			continue
		}
		if err := os.WriteFile(file, []byte(converted), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", file, err)
			continue
		}
		fmt.Printf("Converted %d glyph images in %s\n", n, filepath.Base(file))
	}
	return sum, nil
}
