// Package convert implements the convert subcommand: replace glyph-image
// references in downloaded articles with mapped Unicode text. Destructive, so
// an interactive prompt offers a dry run first unless -yes or -dry-run is
// given.
package convert

import (
	"flag"
	"fmt"
	"io"

	"pravenc_scrap/internal/app"
	"pravenc_scrap/internal/cli"
	"pravenc_scrap/internal/config"
	"pravenc_scrap/internal/cu"

	"github.com/charmbracelet/huh"
)

type options struct {
	ArticlesDir string
	MappingFile string
	DryRun      bool
	Yes         bool
}

func Run(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	mapping, err := cu.LoadMapping(opts.MappingFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d character mappings from %s\n", len(mapping), opts.MappingFile)

	dryRun := opts.DryRun
	if !dryRun && !opts.Yes {
		dryRun, err = promptDryRun()
		if err != nil {
			return err
		}
	}

	summary, err := cu.ConvertDir(opts.ArticlesDir, mapping, dryRun)
	if err != nil {
		return err
	}
	printSummary(summary, dryRun)

	if !dryRun || opts.DryRun || opts.Yes {
		return nil
	}

	// Interactive dry run finished; offer the real conversion.
	proceed := false
	confirm := huh.NewConfirm().
		Title("Apply these conversions?").
		Affirmative("Yes, convert the files.").
		Negative("No, leave them as they are.").
		Value(&proceed)
	if err := confirm.Run(); err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	summary, err = cu.ConvertDir(opts.ArticlesDir, mapping, false)
	if err != nil {
		return err
	}
	printSummary(summary, false)
	return nil
}

func promptDryRun() (bool, error) {
	mode := "dry-run"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Convert Church Slavonic characters").
				Description("Conversion rewrites the Markdown files in place.").
				Options(
					huh.NewOption("Dry run (show what would change)", "dry-run"),
					huh.NewOption("Convert files now", "convert"),
				).
				Value(&mode),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return mode == "dry-run", nil
}

func printSummary(s cu.ConvertSummary, dryRun bool) {
	verb := "Converted"
	if dryRun {
		verb = "Would convert"
	}
	fmt.Printf("%s %d glyph sequences in %d of %d files\n",
		verb, s.Conversions, s.FilesConverted, s.FilesScanned)
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{}
	configStr := ""
	fs.StringVar(&configStr, "config", "", "Path to JSON config file")
	fs.StringVar(&opts.ArticlesDir, "dir", app.DefaultOutputDir, "Directory with downloaded articles")
	fs.StringVar(&opts.MappingFile, "mapping", "church_slavonic_mapping.json", "JSON token mapping file")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Report changes without writing files")
	fs.BoolVar(&opts.Yes, "yes", false, "Convert without prompting")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if configStr != "" {
		cfg, err := config.Load(configStr)
		if err != nil {
			return options{}, err
		}
		if !cli.WasSet(fs, "dir") && cfg.OutputDir != "" {
			opts.ArticlesDir = cfg.OutputDir
		}
		if !cli.WasSet(fs, "mapping") && cfg.MappingFile != "" {
			opts.MappingFile = cfg.MappingFile
		}
	}
	return opts, nil
}
