// Package mappage implements the mappage subcommand: generate the HTML page
// used to annotate Church Slavonic hex tokens with Unicode by hand.
package mappage

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/cu"
)

type options struct {
	ArticlesDir string
	ChunksDir   string
	OutFile     string
}

func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	cs, err := loadCodeSet(opts)
	if err != nil {
		return err
	}
	if len(cs.All) == 0 {
		return fmt.Errorf("no hex tokens found")
	}

	if err := cu.GenerateMappingPage(cs, opts.OutFile); err != nil {
		return err
	}
	fmt.Printf("Generated mapping page with %d characters: %s\n", len(cs.All), opts.OutFile)
	return nil
}

// loadCodeSet prefers the chunk lists written by the codes subcommand and
// falls back to scanning the article directory directly.
func loadCodeSet(opts options) (*cu.CodeSet, error) {
	path26526 := filepath.Join(opts.ChunksDir, cu.Chunks26526File)
	path26528 := filepath.Join(opts.ChunksDir, cu.Chunks26528File)
	if _, err := os.Stat(path26526); err != nil {
		return cu.ExtractCodes(opts.ArticlesDir)
	}

	tokens26526, err := cu.ReadChunkFile(path26526)
	if err != nil {
		return nil, err
	}
	tokens26528, err := cu.ReadChunkFile(path26528)
	if err != nil {
		return nil, err
	}

	all := map[string]struct{}{}
	for _, t := range tokens26526 {
		all[t] = struct{}{}
	}
	for _, t := range tokens26528 {
		all[t] = struct{}{}
	}
	combined := make([]string, 0, len(all))
	for t := range all {
		combined = append(combined, t)
	}
	sort.Strings(combined)

	return &cu.CodeSet{
		All:       combined,
		Char26526: tokens26526,
		Char26528: tokens26528,
	}, nil
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("mappage", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	fs.StringVar(&opts.ArticlesDir, "dir", app.DefaultOutputDir, "Directory with downloaded articles")
	fs.StringVar(&opts.ChunksDir, "chunks-dir", ".", "Directory with the chunk list files")
	fs.StringVar(&opts.OutFile, "out", "church_slavonic_mapping.html", "Output HTML file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}
