// Package main provides the renamepdf CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// A local .env may carry XDG_CONFIG_HOME or proxy settings; absence
	// is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "renamepdf [flags] PDF...",
	Short: "Extract bibliographic metadata from scholarly PDFs",
	Long: `renamepdf reads the first pages of scholarly PDFs, identifies the
publication venue from its layout, and extracts title, authors, year
and the other bibliographic fields.

By default it prints a one-line summary per file. It can also emit a
biblatex entry, copy or rename the file to a canonical
"Author (Year) - Title.pdf" name, and backfill a missing DOI from
Crossref.

The venue set is closed: a PDF from an unknown venue is reported as
unidentified rather than guessed at.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runProcess,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.Flags().BoolVar(&flagBiblatex, "biblatex", false, "Print a biblatex entry for each file")
	rootCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy each file to its canonical name")
	rootCmd.Flags().BoolVar(&flagRename, "rename", false, "Rename each file to its canonical name")
	rootCmd.Flags().BoolVar(&flagLookup, "lookup", false, "Look up missing DOIs on Crossref")
}
