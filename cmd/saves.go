package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wawax007/MewgenicsRenamer/pkg/save"
)

var savesRoot string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List Mewgenics save files",
	Long: `List save files under the game's save directory, newest first.

The default root is %APPDATA%\Glaiel Games\Mewgenics; use --root to
point at a copied save directory.

Examples:
  mewrenamer saves
  mewrenamer saves --root ./copied-saves`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func init() {
	rootCmd.AddCommand(savesCmd)

	savesCmd.Flags().StringVar(&savesRoot, "root", "",
		"save directory root (default: the game's save directory)")
}

func runSaves(cmd *cobra.Command, args []string) error {
	root := savesRoot
	if root == "" {
		root = save.DefaultRoot()
	}

	saves, err := save.DiscoverSaves(root)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	if len(saves) == 0 {
		fmt.Printf("No save files found under %s\n", root)
		return nil
	}

	for _, s := range saves {
		fmt.Printf("%s  %-12s  %s\n", s.Modified.Format("2006-01-02 15:04:05"), s.Name, s.Path)
	}
	return nil
}
