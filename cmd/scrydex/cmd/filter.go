package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
)

// NewFilterCommand creates the filter command with app dependencies.
func NewFilterCommand(app appcontext.Interface) *cobra.Command {
	var (
		flags          filterFlags
		storeType      string
		format         string
		exportableOnly bool
		unique         bool
	)

	c := &cobra.Command{
		Use:   "filter <source> <target>",
		Short: "Derive a filtered card database",
		Long: `Filter reads a card database, keeps only cards matching the filter,
and writes them to a new database file.

The derived database defaults to the sorted store type. Use
--store-type sorted_format together with --format to produce a
format-bound store.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			source, target := args[0], args[1]

			cardFilter, err := flags.build()
			if err != nil {
				return err
			}

			meta := cards.Metadata{}
			meta.Type, err = cards.ParseStoreType(storeType)
			if err != nil {
				return err
			}
			if format != "" {
				meta.Format, err = cards.ParseFormat(format)
				if err != nil {
					return err
				}
			}

			reader, err := cardstore.Open(source)
			if err != nil {
				return err
			}

			opts := []cardstore.StreamOption{cardstore.WithFilter(cardFilter)}
			if exportableOnly {
				opts = append(opts, cardstore.ExportableOnly())
			} else {
				// Group tags only mean something relative to the source
				// envelope, so they are carried over when kept.
				meta.Groups = reader.Metadata().Groups
			}
			if unique {
				opts = append(opts, cardstore.UniqueOnce())
			}

			matched, err := reader.ReadAll(opts...)
			if err != nil {
				_ = reader.Close()
				return err
			}

			if err := cardstore.Save(target, meta, matched); err != nil {
				return err
			}

			app.Logger().Info().
				Str("source", source).
				Str("target", target).
				Int("cards", len(matched)).
				Msg("Wrote filtered card database")

			fmt.Fprintf(c.OutOrStdout(), "Wrote %d cards to %s\n", len(matched), target)
			return nil
		},
	}

	flags.register(c)
	c.Flags().StringVar(&storeType, "store-type", string(cards.StoreSorted), "type of the derived store: inventory, sorted, sorted_format")
	c.Flags().StringVar(&format, "format", "", "game format for a sorted_format store")
	c.Flags().BoolVar(&exportableOnly, "exportable-only", false, "drop cards belonging to a group")
	c.Flags().BoolVarP(&unique, "unique", "u", false, "keep each card identity at most once")

	return c
}
