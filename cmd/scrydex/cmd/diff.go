package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/diff"
)

// NewDiffCommand creates the diff command with app dependencies.
func NewDiffCommand(app appcontext.Interface) *cobra.Command {
	var exportableOnly bool

	c := &cobra.Command{
		Use:   "diff <baseline> <comparison>",
		Short: "Compare two card databases by card identity",
		Long: `Diff reconciles two card databases by card identity (Scryfall ID,
foil treatment, and language). The output describes how the comparison
store differs from the baseline store:

  + key     identity only present in the comparison store
  - key     identity only present in the baseline store
  ~ key n   identity in both with a quantity delta of n`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			baseline, err := cardstore.Open(args[0])
			if err != nil {
				return err
			}
			comparison, err := cardstore.Open(args[1])
			if err != nil {
				return err
			}

			var opts []diff.Option
			if exportableOnly {
				opts = append(opts, diff.ExportableOnly())
			}

			changeset, err := diff.Stores(baseline, comparison, opts...)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if changeset.Empty() {
				fmt.Fprintln(out, "No differences")
				return nil
			}

			for _, key := range changeset.Added {
				fmt.Fprintf(out, "+ %s\n", key)
			}
			for _, key := range changeset.Removed {
				fmt.Fprintf(out, "- %s\n", key)
			}
			changed := make([]cards.Key, 0, len(changeset.Changed))
			for key := range changeset.Changed {
				changed = append(changed, key)
			}
			sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })
			for _, key := range changed {
				fmt.Fprintf(out, "~ %s %+d\n", key, changeset.Changed[key])
			}

			fmt.Fprintf(out, "\n%d added, %d removed, %d changed\n",
				len(changeset.Added), len(changeset.Removed), len(changeset.Changed))
			return nil
		},
	}

	c.Flags().BoolVar(&exportableOnly, "exportable-only", false, "only compare cards belonging to no group")

	return c
}
