package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wawax007/MewgenicsRenamer/pkg/save"
)

var backupCmd = &cobra.Command{
	Use:   "backup <save.sav>",
	Short: "Create a verified backup of a save file",
	Long: `Copy a save file into the backups directory next to it and verify
the copy by digest comparison. On a digest mismatch the partial backup
is deleted and the command fails.

Examples:
  mewrenamer backup slot1.sav`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

var backupsCmd = &cobra.Command{
	Use:   "backups <save.sav>",
	Short: "List backups of a save file",
	Long: `List backups created by this tool for the given save file, newest
first.

Examples:
  mewrenamer backups slot1.sav`,
	Args: cobra.ExactArgs(1),
	RunE: runBackups,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(backupsCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	backupPath, err := save.CreateBackup(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", backupPath)
	return nil
}

func runBackups(cmd *cobra.Command, args []string) error {
	backups, err := save.ListBackups(args[0])
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}
	for _, b := range backups {
		fmt.Println(b)
	}
	return nil
}
