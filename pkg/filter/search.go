package filter

import (
	"regexp"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

// SearchField names a card text field the regex search can target.
type SearchField string

// Searchable card text fields.
const (
	SearchName       SearchField = "name"
	SearchOracleText SearchField = "oracle_text"
	SearchTypeLine   SearchField = "type_line"
)

// SearchFields lists every searchable field, the default target set.
var SearchFields = []SearchField{SearchName, SearchOracleText, SearchTypeLine}

// ParseSearchField validates a raw search field name.
func ParseSearchField(s string) (SearchField, error) {
	switch SearchField(s) {
	case SearchName, SearchOracleText, SearchTypeLine:
		return SearchField(s), nil
	}
	return "", errors.NewValidationError("field", s, "unknown search field")
}

// Search is a compiled regex search over a set of card text fields. The
// exact and word-boundary variants are applied to the pattern once at
// construction, not at evaluation. A match on any configured field, on
// any face or on the top-level card, yields true.
type Search struct {
	re     *regexp.Regexp
	fields []SearchField
}

// SearchOption configures search construction.
type SearchOption func(*searchConfig)

type searchConfig struct {
	caseInsensitive bool
	exact           bool
	wordBoundary    bool
	fields          []SearchField
}

// CaseInsensitive makes the pattern match regardless of case.
func CaseInsensitive() SearchOption {
	return func(c *searchConfig) {
		c.caseInsensitive = true
	}
}

// Exact anchors the pattern to match the whole field value.
func Exact() SearchOption {
	return func(c *searchConfig) {
		c.exact = true
	}
}

// WordBoundary wraps the pattern with word boundary anchors.
func WordBoundary() SearchOption {
	return func(c *searchConfig) {
		c.wordBoundary = true
	}
}

// InFields restricts the search to the given fields.
func InFields(fields ...SearchField) SearchOption {
	return func(c *searchConfig) {
		c.fields = fields
	}
}

// NewSearch compiles a regex search from a raw pattern.
func NewSearch(pattern string, opts ...SearchOption) (*Search, error) {
	config := &searchConfig{fields: SearchFields}
	for _, opt := range opts {
		opt(config)
	}
	if len(config.fields) == 0 {
		config.fields = SearchFields
	}

	expr := pattern
	switch {
	case config.exact:
		expr = "^(?:" + expr + ")$"
	case config.wordBoundary:
		expr = `\b(?:` + expr + `)\b`
	}
	if config.caseInsensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WrapValidation("search", err)
	}

	return &Search{re: re, fields: config.fields}, nil
}

// Match reports whether any configured field of the card matches. Face
// level variants are tried before the top-level field; for the name field
// printed (localized) name variants are included.
func (s *Search) Match(c *cards.Card) bool {
	for _, field := range s.fields {
		for _, text := range fieldTexts(c, field) {
			if s.re.MatchString(text) {
				return true
			}
		}
	}
	return false
}

// fieldTexts collects the candidate texts for one field, faces first.
func fieldTexts(c *cards.Card, field SearchField) []string {
	var texts []string
	for i := range c.CardFaces {
		face := &c.CardFaces[i]
		switch field {
		case SearchName:
			texts = append(texts, face.Name)
			if face.PrintedName != nil {
				texts = append(texts, *face.PrintedName)
			}
		case SearchOracleText:
			if face.OracleText != nil {
				texts = append(texts, *face.OracleText)
			}
		case SearchTypeLine:
			texts = append(texts, face.TypeLine)
		}
	}
	switch field {
	case SearchName:
		if c.PrintedName != nil {
			texts = append(texts, *c.PrintedName)
		}
		texts = append(texts, c.Name)
	case SearchOracleText:
		if c.OracleText != nil {
			texts = append(texts, *c.OracleText)
		}
	case SearchTypeLine:
		texts = append(texts, c.TypeLine)
	}
	return texts
}
