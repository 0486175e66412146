// Package cmd implements the scrydex CLI subcommands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/filter"
)

// filterFlags holds the raw card filter option values shared by the
// find and filter commands. List values are colon-delimited.
type filterFlags struct {
	preset string

	border        string
	colorIdentity string
	cmc           string
	formats       string
	keywords      string
	manaCost      string

	search       string
	searchFields string
	exact        bool
	ignoreCase   bool
	wordBoundary bool
}

// register wires the filter flags onto a command.
func (f *filterFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.preset, "preset", "", "YAML filter preset file (flags override preset values)")

	c.Flags().StringVar(&f.border, "border", "", "border colors (colon-delimited: black:white:borderless:silver:gold)")
	c.Flags().StringVar(&f.colorIdentity, "colors", "", "color identity letters (colon-delimited: W:U:B:R:G:C)")
	c.Flags().StringVar(&f.cmc, "cmc", "", "exact mana value")
	c.Flags().StringVar(&f.formats, "formats", "", "game formats the card must be playable in (colon-delimited)")
	c.Flags().StringVar(&f.keywords, "keywords", "", "keyword ability patterns, all must match (colon-delimited)")
	c.Flags().StringVar(&f.manaCost, "mana-cost", "", "exact mana cost string, e.g. {1}{W}{W}")

	c.Flags().StringVar(&f.search, "search", "", "regex matched against card text")
	c.Flags().StringVar(&f.searchFields, "search-fields", "", "fields searched (colon-delimited: name:oracle_text:type_line)")
	c.Flags().BoolVar(&f.exact, "exact", false, "search must match the whole field")
	c.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "case-insensitive search")
	c.Flags().BoolVarP(&f.wordBoundary, "word-boundary", "w", false, "search matches on word boundaries")
}

// build compiles the raw flag values into a filter. A preset, when
// given, supplies the base configuration; explicit flags override its
// corresponding fields.
func (f *filterFlags) build() (*filter.Filter, error) {
	result := &filter.Filter{}

	if f.preset != "" {
		loaded, err := filter.LoadPreset(f.preset)
		if err != nil {
			return nil, err
		}
		result = loaded
	}

	if f.border != "" {
		borders, err := filter.ParseBorders(f.border)
		if err != nil {
			return nil, err
		}
		result.Border = borders
	}

	if f.colorIdentity != "" {
		colors, err := filter.ParseColors(f.colorIdentity)
		if err != nil {
			return nil, err
		}
		result.ColorIdentity = colors
	}

	if f.cmc != "" {
		cmc, err := filter.ParseCMC(f.cmc)
		if err != nil {
			return nil, err
		}
		result.CMC = cmc
	}

	if f.formats != "" {
		formats, err := filter.ParseFormats(f.formats)
		if err != nil {
			return nil, err
		}
		result.Formats = formats
	}

	if f.keywords != "" {
		keywords, err := filter.ParseKeywords(f.keywords)
		if err != nil {
			return nil, err
		}
		result.Keywords = keywords
	}

	if f.manaCost != "" {
		cost := f.manaCost
		result.ManaCost = &cost
	}

	if f.search != "" {
		var opts []filter.SearchOption
		if f.ignoreCase {
			opts = append(opts, filter.CaseInsensitive())
		}
		if f.exact {
			opts = append(opts, filter.Exact())
		}
		if f.wordBoundary {
			opts = append(opts, filter.WordBoundary())
		}
		if f.searchFields != "" {
			fields, err := filter.ParseSearchFields(f.searchFields)
			if err != nil {
				return nil, err
			}
			opts = append(opts, filter.InFields(fields...))
		}
		search, err := filter.NewSearch(f.search, opts...)
		if err != nil {
			return nil, err
		}
		result.Search = search
	}

	return result, nil
}
