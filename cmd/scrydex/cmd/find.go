package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
)

// NewFindCommand creates the find command with app dependencies.
func NewFindCommand(app appcontext.Interface) *cobra.Command {
	var (
		flags          filterFlags
		exportableOnly bool
		unique         bool
		recursive      bool
	)

	c := &cobra.Command{
		Use:   "find [path]",
		Short: "Find cards matching a filter",
		Long: `Find streams cards from a card database file, or from every database
in a directory, and prints each card matching the filter.

All filter constraints are combined with AND. List-valued flags are
colon-delimited; for example --colors W:U matches cards whose color
identity is within white-blue.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cardFilter, err := flags.build()
			if err != nil {
				return err
			}

			path := app.StoreDir()
			if len(args) == 1 {
				path = args[0]
			}

			readers, err := openTargets(path, recursive || app.Recursive())
			if err != nil {
				return err
			}

			opts := []cardstore.StreamOption{cardstore.WithFilter(cardFilter)}
			if exportableOnly {
				opts = append(opts, cardstore.ExportableOnly())
			}
			if unique {
				opts = append(opts, cardstore.UniqueOnce())
			}

			total := 0
			for _, reader := range readers {
				for card := range reader.Cards(opts...) {
					printCard(c.OutOrStdout(), card)
					total++
				}
				err := reader.Err()
				_ = reader.Close()
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(c.OutOrStdout(), "\n%d matching cards\n", total)
			return nil
		},
	}

	flags.register(c)
	c.Flags().BoolVar(&exportableOnly, "exportable-only", false, "only cards belonging to no group")
	c.Flags().BoolVarP(&unique, "unique", "u", false, "report each card identity at most once")
	c.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")

	return c
}

// openTargets opens the card databases at path, which may name a single
// file or a directory to scan.
func openTargets(path string, recursive bool) ([]*cardstore.Reader, error) {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		reader, err := cardstore.Open(path)
		if err != nil {
			return nil, err
		}
		return []*cardstore.Reader{reader}, nil
	}

	var opts []cardstore.LoadOption
	if recursive {
		opts = append(opts, cardstore.Recursive())
	}
	return cardstore.OpenDir(path, opts...)
}

// printCard writes a single human-readable card line.
func printCard(w io.Writer, card *cards.Card) {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx %s", card.Quantity, card.Name)
	if card.SetCode != "" {
		fmt.Fprintf(&b, " (%s)", strings.ToUpper(card.SetCode))
	}
	if card.Foil != nil && *card.Foil != "" {
		fmt.Fprintf(&b, " [%s]", *card.Foil)
	}
	if card.Lang != "" && card.Lang != "en" {
		fmt.Fprintf(&b, " [%s]", card.Lang)
	}
	if card.TypeLine != "" {
		fmt.Fprintf(&b, " - %s", card.TypeLine)
	}
	fmt.Fprintln(w, b.String())
}
