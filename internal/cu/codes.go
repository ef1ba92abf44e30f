package cu

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"pravenc_scrap/internal/output"
)

// The site serves glyph images under two char/ ids; both occur in the
// archive and their token sets overlap.
var (
	char26526Re = regexp.MustCompile(`https://pravenc\.ru/char/26526/([^/]+)/image\.png`)
	char26528Re = regexp.MustCompile(`https://pravenc\.ru/char/26528/([^/]+)/image\.png`)
)

// CodeSet holds the unique hex tokens found in an article archive, combined
// and per char/ id, sorted.
type CodeSet struct {
	All       []string
	Char26526 []string
	Char26528 []string
}

// ExtractCodes scans every Markdown file in dir for glyph-image URLs and
// collects the embedded hex tokens. Unreadable files are reported and
// skipped.
func ExtractCodes(dir string) (*CodeSet, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files in %s", dir)
	}

	all := map[string]struct{}{}
	by26526 := map[string]struct{}{}
	by26528 := map[string]struct{}{}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: read %s: %v\n", file, err)
			continue
		}
		content := string(data)
		collectTokens(char26526Re, content, by26526, all)
		collectTokens(char26528Re, content, by26528, all)
	}

	return &CodeSet{
		All:       sortedKeys(all),
		Char26526: sortedKeys(by26526),
		Char26528: sortedKeys(by26528),
	}, nil
}

func collectTokens(re *regexp.Regexp, content string, dst, all map[string]struct{}) {
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		for _, token := range tokenRe.FindAllString(m[1], -1) {
			dst[token] = struct{}{}
			all[token] = struct{}{}
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Output file names kept compatible with the existing annotation workflow.
const (
	AllChunksFile   = "all_church_slavonic_hex_chunks.txt"
	Chunks26526File = "char_26526_hex_chunks.txt"
	Chunks26528File = "char_26528_hex_chunks.txt"
)

// WriteChunkFiles writes the combined and per-id token lists into dir.
func WriteChunkFiles(cs *CodeSet, dir string) error {
	files := []struct {
		name   string
		tokens []string
	}{
		{AllChunksFile, cs.All},
		{Chunks26526File, cs.Char26526},
		{Chunks26528File, cs.Char26528},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := output.WriteLines(path, f.tokens); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Wrote %d tokens: %s\n", len(f.tokens), path)
	}
	return nil
}

// ReadChunkFile reads a newline-separated token list.
func ReadChunkFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token list %s: %w", path, err)
	}
	tokens := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			tokens = append(tokens, line)
		}
	}
	return tokens, nil
}
