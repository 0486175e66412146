package filter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

// Raw option parsing for the CLI layer. Lists are colon-delimited;
// duplicate entries are configuration errors, not silently deduplicated.

// BorderColors are the border colors a printing can carry.
var BorderColors = []string{"black", "white", "borderless", "silver", "gold"}

// ColorLetters are the color identity letters, colorless included.
var ColorLetters = []string{"W", "U", "B", "R", "G", "C"}

// SplitList splits a colon-delimited option value, rejecting empty and
// duplicate entries. Exported for option surfaces that parse their own
// list values through the same rules.
func SplitList(field, raw string) ([]string, error) {
	if raw == "" {
		return nil, errors.NewValidationError(field, raw, "empty option value")
	}
	entries := strings.Split(raw, ":")
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry == "" {
			return nil, errors.NewValidationError(field, raw, "empty list entry")
		}
		if seen[entry] {
			return nil, errors.NewValidationError(field, raw, "duplicate entry "+entry)
		}
		seen[entry] = true
	}
	return entries, nil
}

// ParseBorders parses a colon-delimited border color list.
func ParseBorders(raw string) ([]string, error) {
	entries, err := SplitList("border", raw)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		known := false
		for _, border := range BorderColors {
			if entry == border {
				known = true
				break
			}
		}
		if !known {
			return nil, errors.NewValidationError("border", entry, "unknown border color")
		}
	}
	return entries, nil
}

// ParseColors parses a colon-delimited color identity list. Letters are
// accepted case-insensitively and normalized to upper case.
func ParseColors(raw string) ([]string, error) {
	entries, err := SplitList("colorIdentity", strings.ToUpper(raw))
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		known := false
		for _, letter := range ColorLetters {
			if entry == letter {
				known = true
				break
			}
		}
		if !known {
			return nil, errors.NewValidationError("colorIdentity", entry, "unknown color letter")
		}
	}
	return entries, nil
}

// ParseFormats parses a colon-delimited game format list.
func ParseFormats(raw string) ([]cards.Format, error) {
	entries, err := SplitList("formats", raw)
	if err != nil {
		return nil, err
	}
	formats := make([]cards.Format, 0, len(entries))
	for _, entry := range entries {
		format, err := cards.ParseFormat(entry)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

// ParseKeywords parses a colon-delimited keyword pattern list. Each entry
// compiles to a case-insensitive regex.
func ParseKeywords(raw string) ([]*regexp.Regexp, error) {
	entries, err := SplitList("keywords", raw)
	if err != nil {
		return nil, err
	}
	patterns := make([]*regexp.Regexp, 0, len(entries))
	for _, entry := range entries {
		re, err := regexp.Compile("(?i)" + entry)
		if err != nil {
			return nil, errors.WrapValidation("keywords", err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// ParseCMC parses a mana value option.
func ParseCMC(raw string) (*float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.NewValidationError("cmc", raw, "not a number")
	}
	if value < 0 {
		return nil, errors.NewValidationError("cmc", raw, "negative mana value")
	}
	return &value, nil
}

// ParseSearchFields parses a colon-delimited search field list.
func ParseSearchFields(raw string) ([]SearchField, error) {
	entries, err := SplitList("fields", raw)
	if err != nil {
		return nil, err
	}
	fields := make([]SearchField, 0, len(entries))
	for _, entry := range entries {
		field, err := ParseSearchField(entry)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}
