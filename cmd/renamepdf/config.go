package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/renamepdf/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitConfigError)
		}

		fmt.Printf("config file: %s\n", config.Path())
		fmt.Printf("library_path: %s\n", cfg.LibraryPath)
		fmt.Printf("lookup: %t\n", cfg.Lookup)
		if len(cfg.GlyphFixes) > 0 {
			fmt.Println("glyph_fixes:")
			for from, to := range cfg.GlyphFixes {
				fmt.Printf("  %q: %q\n", from, to)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
