// Package codes implements the codes subcommand: scan downloaded articles for
// Church Slavonic character-image references and write the hex token lists.
package codes

import (
	"flag"
	"fmt"
	"io"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/cu"
)

type options struct {
	ArticlesDir string
	OutDir      string
}

func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	cs, err := cu.ExtractCodes(opts.ArticlesDir)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d unique hex chunks (%d from char/26526, %d from char/26528)\n",
		len(cs.All), len(cs.Char26526), len(cs.Char26528))

	if err := cu.WriteChunkFiles(cs, opts.OutDir); err != nil {
		return err
	}
	fmt.Printf("Saved chunk lists to %s\n", opts.OutDir)
	return nil
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("codes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	fs.StringVar(&opts.ArticlesDir, "dir", app.DefaultOutputDir, "Directory with downloaded articles")
	fs.StringVar(&opts.OutDir, "out-dir", ".", "Directory for the chunk list files")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}
