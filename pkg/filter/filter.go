// Package filter provides pure card-level predicate evaluation for card
// database streams. A Filter is a declarative configuration of independent
// property constraints combined with logical AND, plus an optional regex
// search over the card's text fields. Evaluation has no side effects and
// no hidden state, so the same filter applied twice to the same card
// always yields the same result.
package filter

import (
	"regexp"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
)

// Filter is a declarative card predicate. Every supplied constraint must
// pass for a card to match. The zero value matches every card.
type Filter struct {
	// Border is the set of allowed border colors
	Border []string

	// ColorIdentity is the allowed color set; it must be a superset of the
	// card's recorded color identity ("cards playable within these colors")
	ColorIdentity []string

	// CMC requires an exact mana value match; multi-faced cards match if
	// any face's mana value equals the target
	CMC *float64

	// Formats requires the card to be in a legal state for every listed format
	Formats []cards.Format

	// Keywords requires every pattern to match at least one of the card's keywords
	Keywords []*regexp.Regexp

	// ManaCost requires an exact mana cost string match, with the same
	// multi-face fallback as CMC
	ManaCost *string

	// Search is an optional regex search over configured text fields,
	// evaluated first and short-circuiting on failure
	Search *Search
}

// Match evaluates the filter against a single card.
func (f *Filter) Match(c *cards.Card) bool {
	if f == nil {
		return true
	}
	if f.Search != nil && !f.Search.Match(c) {
		return false
	}
	if !f.matchBorder(c) {
		return false
	}
	if !f.matchColorIdentity(c) {
		return false
	}
	if !f.matchCMC(c) {
		return false
	}
	if !f.matchFormats(c) {
		return false
	}
	if !f.matchKeywords(c) {
		return false
	}
	return f.matchManaCost(c)
}

func (f *Filter) matchBorder(c *cards.Card) bool {
	if len(f.Border) == 0 {
		return true
	}
	for _, border := range f.Border {
		if c.BorderColor == border {
			return true
		}
	}
	return false
}

func (f *Filter) matchColorIdentity(c *cards.Card) bool {
	if len(f.ColorIdentity) == 0 {
		return true
	}
	allowed := make(map[string]bool, len(f.ColorIdentity))
	for _, color := range f.ColorIdentity {
		allowed[color] = true
	}
	// Every color in the card's identity must appear in the allowed set.
	for _, color := range c.ColorIdentity {
		if !allowed[color] {
			return false
		}
	}
	return true
}

func (f *Filter) matchCMC(c *cards.Card) bool {
	if f.CMC == nil {
		return true
	}
	for _, value := range c.ManaValues() {
		if value == *f.CMC {
			return true
		}
	}
	return false
}

func (f *Filter) matchFormats(c *cards.Card) bool {
	for _, format := range f.Formats {
		if !c.IsLegalIn(format) {
			return false
		}
	}
	return true
}

func (f *Filter) matchKeywords(c *cards.Card) bool {
	if len(f.Keywords) == 0 {
		return true
	}
	if len(c.Keywords) == 0 {
		return false
	}
	for _, pattern := range f.Keywords {
		matched := false
		for _, keyword := range c.Keywords {
			if pattern.MatchString(keyword) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func (f *Filter) matchManaCost(c *cards.Card) bool {
	if f.ManaCost == nil {
		return true
	}
	for _, cost := range c.ManaCosts() {
		if cost == *f.ManaCost {
			return true
		}
	}
	return false
}
