package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wawax007/MewgenicsRenamer/pkg/catblob"
	"github.com/Wawax007/MewgenicsRenamer/pkg/save"
)

var entriesVerbose bool

var entriesCmd = &cobra.Command{
	Use:   "entries <save.sav>",
	Short: "List renameable entities in a save file",
	Long: `List every renameable entity found in a save file: team cats, the
profile cat, and winning-team cats. Rows whose blobs cannot be parsed
are shown read-only.

Examples:
  mewrenamer entries slot1.sav
  mewrenamer entries slot1.sav -v`,
	Args: cobra.ExactArgs(1),
	RunE: runEntries,
}

func init() {
	rootCmd.AddCommand(entriesCmd)

	entriesCmd.Flags().BoolVarP(&entriesVerbose, "verbose", "v", false,
		"print blob sizes and parse warnings")
}

func runEntries(cmd *cobra.Command, args []string) error {
	store, err := save.OpenSave(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Entries(catblob.DetectLimits{})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entities found")
		return nil
	}

	category := ""
	for _, e := range entries {
		if e.CategoryName != category {
			category = e.CategoryName
			fmt.Printf("\n%s\n", category)
		}

		marker := " "
		if e.ReadOnly {
			marker = "*"
		}
		fmt.Printf("  %s %-10s %-8s %q\n", marker, e.Table, e.Key, e.Name)

		if entriesVerbose {
			fmt.Printf("      %d bytes\n", e.BlobSize)
			for _, w := range e.Warnings {
				fmt.Printf("      warning: %s\n", w)
			}
			if e.ParseError != "" {
				fmt.Printf("      parse error: %s\n", e.ParseError)
			}
		}
	}

	fmt.Println("\n(* = read-only)")
	return nil
}
