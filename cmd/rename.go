package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wawax007/MewgenicsRenamer/pkg/save"
)

var renameYes bool

var renameCmd = &cobra.Command{
	Use:   "rename <save.sav> <table> <key> <new-name>",
	Short: "Rename an entity in a save file",
	Long: `Rename an entity identified by its table and key (as printed by the
entries command). The save file is backed up first and the backup is
verified by digest before any byte is modified; the written blob is
read back and compared to what was written.

Numeric keys address the cats and winning_teams tables; text keys
address the files table (e.g. save_file_cat).

Examples:
  mewrenamer rename slot1.sav cats 7 "Biscuit" --yes
  mewrenamer rename slot1.sav files save_file_cat "Hero" --yes`,
	Args: cobra.ExactArgs(4),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false,
		"actually modify the save file")
}

func parseKey(s string) save.Key {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return save.IntKey(n)
	}
	return save.TextKey(s)
}

func runRename(cmd *cobra.Command, args []string) error {
	savePath, table, key, newName := args[0], args[1], parseKey(args[2]), args[3]

	if !save.KnownTable(table) {
		return fmt.Errorf("unknown table %q (known: %s)", table, strings.Join(save.TableNames(), ", "))
	}

	if !renameYes {
		fmt.Printf("Would rename %s[%s] in %s to %q.\n", table, key, savePath, newName)
		fmt.Println("Re-run with --yes to modify the save file. Close the game first.")
		return nil
	}

	result, err := save.Rename(savePath, table, key, newName, save.RenameOptions{})
	if err != nil {
		if result != nil && result.BackupPath != "" {
			fmt.Printf("Backup: %s\n", result.BackupPath)
			if errors.Is(err, save.ErrWriteVerification) {
				fmt.Println("The save file may be corrupted. Restore the backup with:")
				fmt.Printf("  mewrenamer restore %q %q\n", result.BackupPath, savePath)
			}
		}
		return err
	}

	fmt.Printf("Renamed %q -> %q\n", result.OldName, result.NewName)
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	fmt.Printf("Backup: %s\n", result.BackupPath)
	return nil
}
