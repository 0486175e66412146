// Package cards defines the card record and metadata model for scrydex
// card database files. A card database is a JSON document holding one
// metadata envelope and one card array; the types here mirror the
// Scryfall card object schema for the fields the store cares about.
package cards

// ObjectCard is the discriminator value carried by every well-formed
// card record. Array entries with any other discriminator are skipped
// by the streaming reader.
const ObjectCard = "card"

// Card represents one physical printing in a collection, including its
// quantity and the source file it was imported from.
type Card struct {
	// Discriminator tag, "card" for well-formed records
	Object string `json:"object"`

	// Identity fields: scryfall_id + foil + lang form the composite key
	ScryfallID string  `json:"scryfall_id"`
	Foil       *string `json:"foil"`
	Lang       string  `json:"lang"`

	// Number of copies represented by this record
	Quantity int `json:"quantity"`

	// Source file the record originated from, used for group tagging
	Filename string `json:"filename,omitempty"`

	// Basic card information
	Name        string  `json:"name"`
	PrintedName *string `json:"printed_name,omitempty"`
	TypeLine    string  `json:"type_line,omitempty"`
	OracleText  *string `json:"oracle_text,omitempty"`

	// Mana information
	ManaCost *string `json:"mana_cost,omitempty"`
	CMC      float64 `json:"cmc"`

	// Colors and identity
	Colors        []string `json:"colors,omitempty"`
	ColorIdentity []string `json:"color_identity,omitempty"`

	// Gameplay attributes
	Keywords   []string          `json:"keywords,omitempty"`
	Legalities map[string]string `json:"legalities,omitempty"`

	// Printing attributes
	BorderColor string `json:"border_color,omitempty"`
	SetCode     string `json:"set,omitempty"`

	// Stats (creatures, planeswalkers, battles)
	Power     *string `json:"power,omitempty"`
	Toughness *string `json:"toughness,omitempty"`
	Loyalty   *string `json:"loyalty,omitempty"`
	Defense   *string `json:"defense,omitempty"`

	// Faces of double-faced or split cards; queries over split attributes
	// must consider both the card-level field and the face-level fields
	CardFaces []CardFace `json:"card_faces,omitempty"`
}

// CardFace represents one face of a multi-faced card. Each face carries
// its own partial copy of the split attributes.
type CardFace struct {
	Name        string   `json:"name"`
	PrintedName *string  `json:"printed_name,omitempty"`
	TypeLine    string   `json:"type_line,omitempty"`
	OracleText  *string  `json:"oracle_text,omitempty"`
	ManaCost    *string  `json:"mana_cost,omitempty"`
	CMC         *float64 `json:"cmc,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Power       *string  `json:"power,omitempty"`
	Toughness   *string  `json:"toughness,omitempty"`
	Loyalty     *string  `json:"loyalty,omitempty"`
	Defense     *string  `json:"defense,omitempty"`
}

// IsWellFormed reports whether the record carries the card discriminator.
func (c *Card) IsWellFormed() bool {
	return c != nil && c.Object == ObjectCard
}

// MultiFaced reports whether the card carries face-level records.
func (c *Card) MultiFaced() bool {
	return len(c.CardFaces) > 0
}

// ManaValues returns the card-level mana value followed by any face-level
// mana values. A multi-faced constraint matches if any entry matches.
func (c *Card) ManaValues() []float64 {
	values := []float64{c.CMC}
	for _, face := range c.CardFaces {
		if face.CMC != nil {
			values = append(values, *face.CMC)
		}
	}
	return values
}

// ManaCosts returns the card-level mana cost string followed by any
// face-level mana cost strings. Entries with no recorded cost are omitted.
func (c *Card) ManaCosts() []string {
	var costs []string
	if c.ManaCost != nil {
		costs = append(costs, *c.ManaCost)
	}
	for _, face := range c.CardFaces {
		if face.ManaCost != nil {
			costs = append(costs, *face.ManaCost)
		}
	}
	return costs
}

// LegalityStates are the legality values treated as "in a legal state"
// when checking format legality.
var LegalityStates = map[string]bool{
	"legal":      true,
	"restricted": true,
}

// IsLegalIn reports whether the card is in a legal state for the format.
func (c *Card) IsLegalIn(format Format) bool {
	if c.Legalities == nil {
		return false
	}
	return LegalityStates[c.Legalities[string(format)]]
}
