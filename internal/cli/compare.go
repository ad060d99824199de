package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanceb/albums/internal/diff"
	"github.com/vanceb/albums/internal/store"
)

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <test>",
	Short: "Compare two catalog files",
	Long: `Compare reads two catalog files produced by index and reports their
differences: entries missing from the test catalog render as "-" lines,
entries the test catalog has extra render as "+" lines, grouped by artist
and album. Artists and albums with no differences are omitted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := store.Load(args[0])
		if err != nil {
			return err
		}
		test, err := store.Load(args[1])
		if err != nil {
			return err
		}

		report := diff.Compare(ref, test)
		if report.Empty() {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalogs match.")
			return nil
		}
		return diff.NewRenderer().Write(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
