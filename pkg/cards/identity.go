package cards

import (
	"strings"

	"golang.org/x/text/language"
)

// Key is the composite identity of a physical card: scryfall_id + foil +
// lang. Distinct finishes and languages of the same printing are distinct
// physical objects and therefore distinct keys.
type Key string

// keySeparator joins the key components. Scryfall IDs are UUIDs and
// language codes are BCP 47 subtags, so "|" never collides.
const keySeparator = "|"

// Identity derives the composite identity key for a card. Construction is
// field-order fixed and deterministic: equal scryfall_id, foil, and lang
// always produce equal keys.
func (c *Card) Identity() Key {
	return MakeKey(c.ScryfallID, c.Foil, c.Lang)
}

// MakeKey builds an identity key from raw components. A nil foil finish
// contributes an empty component, distinct from any named finish.
func MakeKey(scryfallID string, foil *string, lang string) Key {
	finish := ""
	if foil != nil {
		finish = *foil
	}
	return Key(scryfallID + keySeparator + finish + keySeparator + NormalizeLang(lang))
}

// NormalizeLang canonicalizes a language code for identity purposes.
// Parseable BCP 47 tags canonicalize through x/text; anything else falls
// back to simple lowercasing so the key stays deterministic.
func NormalizeLang(lang string) string {
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	return strings.ToLower(tag.String())
}

// Keys is a set of identity keys. It satisfies the store's membership
// interface for unique-key stream filtering.
type Keys map[Key]struct{}

// NewKeys builds a key set from the given keys.
func NewKeys(keys ...Key) Keys {
	set := make(Keys, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Has reports whether the key is a member of the set.
func (s Keys) Has(key Key) bool {
	_, ok := s[key]
	return ok
}

// Add inserts a key into the set.
func (s Keys) Add(key Key) {
	s[key] = struct{}{}
}
