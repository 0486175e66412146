package filter

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

// Preset is the on-disk YAML shape of a saved filter configuration.
// Option values use the same raw colon-delimited syntax as the CLI flags
// so a preset and a flag line stay interchangeable.
type Preset struct {
	Border        string        `yaml:"border,omitempty"`
	ColorIdentity string        `yaml:"colorIdentity,omitempty"`
	CMC           *string       `yaml:"cmc,omitempty"`
	Formats       string        `yaml:"formats,omitempty"`
	Keywords      string        `yaml:"keywords,omitempty"`
	ManaCost      *string       `yaml:"manaCost,omitempty"`
	Search        *SearchPreset `yaml:"search,omitempty"`
}

// SearchPreset is the YAML shape of a saved regex search.
type SearchPreset struct {
	Pattern         string `yaml:"pattern"`
	CaseInsensitive bool   `yaml:"caseInsensitive,omitempty"`
	Exact           bool   `yaml:"exact,omitempty"`
	WordBoundary    bool   `yaml:"wordBoundary,omitempty"`
	Fields          string `yaml:"fields,omitempty"`
}

// LoadPreset reads a YAML filter preset from disk and builds the filter
// through the same validation path as the CLI options.
func LoadPreset(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return preset.Build()
}

// Build converts the raw preset values into a compiled Filter.
func (p *Preset) Build() (*Filter, error) {
	f := &Filter{}

	if p.Border != "" {
		borders, err := ParseBorders(p.Border)
		if err != nil {
			return nil, err
		}
		f.Border = borders
	}

	if p.ColorIdentity != "" {
		colors, err := ParseColors(p.ColorIdentity)
		if err != nil {
			return nil, err
		}
		f.ColorIdentity = colors
	}

	if p.CMC != nil {
		cmc, err := ParseCMC(*p.CMC)
		if err != nil {
			return nil, err
		}
		f.CMC = cmc
	}

	if p.Formats != "" {
		formats, err := ParseFormats(p.Formats)
		if err != nil {
			return nil, err
		}
		f.Formats = formats
	}

	if p.Keywords != "" {
		keywords, err := ParseKeywords(p.Keywords)
		if err != nil {
			return nil, err
		}
		f.Keywords = keywords
	}

	f.ManaCost = p.ManaCost

	if p.Search != nil {
		var opts []SearchOption
		if p.Search.CaseInsensitive {
			opts = append(opts, CaseInsensitive())
		}
		if p.Search.Exact {
			opts = append(opts, Exact())
		}
		if p.Search.WordBoundary {
			opts = append(opts, WordBoundary())
		}
		if p.Search.Fields != "" {
			fields, err := ParseSearchFields(p.Search.Fields)
			if err != nil {
				return nil, err
			}
			opts = append(opts, InFields(fields...))
		}
		search, err := NewSearch(p.Search.Pattern, opts...)
		if err != nil {
			return nil, err
		}
		f.Search = search
	}

	return f, nil
}
