package cmd

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/filter"
)

// listEntry is the YAML shape of one discovered card database.
type listEntry struct {
	Path          string              `yaml:"path"`
	Name          string              `yaml:"name"`
	Type          cards.StoreType     `yaml:"type"`
	Format        cards.Format        `yaml:"format,omitempty"`
	Groups        map[string][]string `yaml:"groups,omitempty"`
	CLIVersion    string              `yaml:"cliVersion,omitempty"`
	SchemaVersion string              `yaml:"schemaVersion,omitempty"`
	GeneratedAt   string              `yaml:"generatedAt,omitempty"`
}

// NewListCommand creates the list command with app dependencies.
func NewListCommand(app appcontext.Interface) *cobra.Command {
	var (
		types     string
		formats   string
		recursive bool
	)

	c := &cobra.Command{
		Use:   "list [directory]",
		Short: "List card databases in a directory",
		Long: `List discovers card database files in a directory and prints each
store's metadata envelope as YAML.

Corrupt or non-database JSON files are skipped; run with --verbose to
see what was skipped and why.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := app.StoreDir()
			if len(args) == 1 {
				dir = args[0]
			}

			opts, err := loadOptions(types, formats, recursive || app.Recursive())
			if err != nil {
				return err
			}

			readers, err := cardstore.OpenDir(dir, opts...)
			if err != nil {
				return err
			}
			defer func() {
				for _, reader := range readers {
					_ = reader.Close()
				}
			}()

			if len(readers) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No card databases found")
				return nil
			}

			entries := make([]listEntry, 0, len(readers))
			for _, reader := range readers {
				entries = append(entries, newListEntry(reader))
			}

			out, err := yaml.Marshal(entries)
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(out)
			return err
		},
	}

	c.Flags().StringVar(&types, "types", "", "store types to include (colon-delimited: inventory:sorted:sorted_format)")
	c.Flags().StringVar(&formats, "formats", "", "game formats to include, implies sorted_format stores (colon-delimited)")
	c.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")

	return c
}

// loadOptions converts the raw list flags into directory scan options.
func loadOptions(rawTypes, rawFormats string, recursive bool) ([]cardstore.LoadOption, error) {
	var opts []cardstore.LoadOption

	if rawTypes != "" {
		entries, err := filter.SplitList("types", rawTypes)
		if err != nil {
			return nil, err
		}
		types := make([]cards.StoreType, 0, len(entries))
		for _, entry := range entries {
			storeType, err := cards.ParseStoreType(entry)
			if err != nil {
				return nil, err
			}
			types = append(types, storeType)
		}
		opts = append(opts, cardstore.WithTypes(types...))
	}

	if rawFormats != "" {
		formats, err := filter.ParseFormats(rawFormats)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cardstore.WithFormats(formats...))
	}

	if recursive {
		opts = append(opts, cardstore.Recursive())
	}

	return opts, nil
}

func newListEntry(reader *cardstore.Reader) listEntry {
	meta := reader.Metadata()

	entry := listEntry{
		Path:          reader.Path(),
		Name:          meta.Name,
		Type:          meta.Type,
		Format:        meta.Format,
		CLIVersion:    meta.CLIVersion,
		SchemaVersion: meta.SchemaVersion,
	}
	if !meta.GeneratedAt.IsZero() {
		entry.GeneratedAt = meta.GeneratedAt.Format(time.RFC3339)
	}
	if len(meta.Groups) > 0 {
		entry.Groups = make(map[string][]string, len(meta.Groups))
		for kind, files := range meta.Groups {
			entry.Groups[string(kind)] = files
		}
	}
	return entry
}
