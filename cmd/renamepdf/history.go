package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/renamepdf/internal/config"
	"github.com/matsen/renamepdf/internal/library"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently processed documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		path := cfg.LibraryFile()
		if path == "" {
			fmt.Fprintf(os.Stderr, "error: cannot locate the library (no config directory)\n")
			os.Exit(ExitConfigError)
		}
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "error: no library at %s (nothing processed yet?)\n", path)
			os.Exit(ExitConfigError)
		}

		lib, err := library.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		defer lib.Close()

		entries, err := lib.Recent(historyLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  %s (%s)  %s\n",
				e.ProcessedAt.Format("2006-01-02"),
				e.ID,
				strings.Join(e.Names, "; "),
				e.Year,
				e.Title)
			if e.RenamedTo != "" {
				fmt.Printf("            -> %s\n", e.RenamedTo)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
