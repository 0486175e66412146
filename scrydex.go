// Package scrydex manages file-backed databases of trading card
// collections. Each database is a single JSON document holding a
// metadata envelope followed by an array of card records in Scryfall's
// schema. The package is the public facade; the heavy lifting lives in
// pkg/cardstore (reading, writing, directory discovery), pkg/filter
// (card predicates), and pkg/diff (identity-keyed reconciliation).
//
// Typical usage:
//
//	reader, err := scrydex.Open("collection.json")
//	if err != nil {
//		return err
//	}
//	defer reader.Close()
//
//	for card := range reader.Cards(cardstore.ExportableOnly()) {
//		fmt.Println(card.Name)
//	}
package scrydex

import (
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/diff"
)

// Open opens a single card database file for reading. The metadata
// envelope is parsed and validated eagerly; the card array is not
// touched until the stream is consumed.
func Open(path string) (*cardstore.Reader, error) {
	return cardstore.Open(path)
}

// OpenDir discovers and opens every card database under dir. See
// cardstore.OpenDir for filtering and recursion options.
func OpenDir(dir string, opts ...cardstore.LoadOption) ([]*cardstore.Reader, error) {
	return cardstore.OpenDir(dir, opts...)
}

// Save writes a card database to path, stamping the envelope with the
// tool version, schema version, and generation time.
func Save(path string, meta cards.Metadata, list []*cards.Card) error {
	return cardstore.Save(path, meta, list)
}

// Diff reconciles a comparison store against a baseline store by
// identity key. Both readers are consumed.
func Diff(baseline, comparison *cardstore.Reader, opts ...diff.Option) (*diff.Changeset, error) {
	return diff.Stores(baseline, comparison, opts...)
}
