package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mewrenamer",
	Short: "Rename cats and inspect data files in Mewgenics saves",
	Long: `mewrenamer edits Mewgenics save files without breaking the game's
ability to read them back.

Supported operations:
  - List save files and the renameable entities inside them
  - Rename a cat, with a verified backup taken first
  - Restore a save file from a backup
  - List, validate, and extract files from resources.gpak archives

Every rename backs up the save file and verifies both the backup and
the written bytes. Close the game before modifying a save.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
