package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matsen/renamepdf/internal/action"
	"github.com/matsen/renamepdf/internal/authorname"
	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/config"
	"github.com/matsen/renamepdf/internal/crossref"
	"github.com/matsen/renamepdf/internal/extract"
	"github.com/matsen/renamepdf/internal/library"
	"github.com/matsen/renamepdf/internal/normalize"
	"github.com/matsen/renamepdf/internal/render"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

var (
	flagBiblatex bool
	flagCopy     bool
	flagRename   bool
	flagLookup   bool
)

// runProcess handles each PDF independently: a failure is reported and
// the remaining files still get processed. The exit code reflects
// whether every file succeeded.
func runProcess(cmd *cobra.Command, args []string) error {
	if flagCopy && flagRename {
		return fmt.Errorf("--copy and --rename are mutually exclusive")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	var lib *library.Library
	if path := cfg.LibraryFile(); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		lib, err = library.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		defer lib.Close()
	}

	var client *crossref.Client
	if flagLookup || cfg.Lookup {
		client = crossref.NewClient()
	}

	if failed := processBatch(cmd.Context(), args, cfg, client, lib); failed > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}

// processBatch runs every path regardless of earlier failures and
// returns how many failed.
func processBatch(ctx context.Context, paths []string, cfg *config.Global, client *crossref.Client, lib *library.Library) int {
	failed := 0
	for _, path := range paths {
		if err := processOne(ctx, path, cfg, client, lib); err != nil {
			outputError("%s: %v", path, err)
			failed++
		}
	}
	return failed
}

// readDocument is a seam for tests; processing always goes through it.
var readDocument = textsource.Read

func processOne(ctx context.Context, path string, cfg *config.Global, client *crossref.Client, lib *library.Library) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	match, err := venue.Classify(doc)
	if err != nil {
		return err
	}

	rec, err := extract.Run(doc, match)
	if err != nil {
		return err
	}

	normalize.Apply(rec, cfg.GlyphFixes)

	if err := rec.Validate(); err != nil {
		return err
	}

	if client != nil && rec.DOI.Empty() {
		backfillDOI(ctx, client, rec)
	}

	fmt.Println(action.Summary(rec))

	if flagBiblatex {
		if rec.DOI.Empty() {
			outputWarning("%s: no DOI found", path)
		}
		fmt.Println(render.Entry(rec))
	}

	renamedTo := ""
	switch {
	case flagCopy:
		renamedTo, err = action.Copy(path, rec)
	case flagRename:
		renamedTo, err = action.Rename(path, rec)
	}
	if err != nil {
		return err
	}
	if renamedTo != "" && renamedTo != path {
		fmt.Printf("  -> %s\n", renamedTo)
	}

	if lib != nil {
		updated, err := lib.Record(rec, renamedTo)
		if err != nil {
			outputWarning("%s: %v", path, err)
		} else if updated {
			fmt.Println("  (already in library, entry updated)")
		}
	}

	return nil
}

// backfillDOI asks Crossref for the DOI. Lookup trouble is a warning,
// not a processing failure: the extracted record stands on its own.
func backfillDOI(ctx context.Context, client *crossref.Client, rec *bib.Record) {
	names := rec.Names()
	if len(names) == 0 {
		return
	}
	last := authorname.Parse(names[0]).Last

	doi, err := client.LookupDOI(ctx, rec.Title.Value(), last)
	if err != nil {
		outputWarning("crossref lookup: %v", err)
		return
	}
	if doi != "" {
		rec.DOI = bib.Set(doi)
	}
}
