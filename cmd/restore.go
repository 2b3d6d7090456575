package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wawax007/MewgenicsRenamer/pkg/save"
)

var restoreYes bool

var restoreCmd = &cobra.Command{
	Use:   "restore <backup> <save.sav>",
	Short: "Restore a save file from a backup",
	Long: `Copy a backup over the target save file and verify the result by
digest comparison. This overwrites the current save.

Examples:
  mewrenamer restore backups/slot1_renamer_2026-08-23_14-02-11.savbackup slot1.sav --yes`,
	Args: cobra.ExactArgs(2),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false,
		"actually overwrite the save file")
}

func runRestore(cmd *cobra.Command, args []string) error {
	backupPath, savePath := args[0], args[1]

	if !restoreYes {
		fmt.Printf("Would overwrite %s with %s.\n", savePath, backupPath)
		fmt.Println("Re-run with --yes to restore. Close the game first.")
		return nil
	}

	if err := save.Restore(backupPath, savePath); err != nil {
		return err
	}
	fmt.Printf("Restored %s from %s\n", savePath, backupPath)
	return nil
}
