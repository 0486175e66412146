package diff

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
)

func card(id, lang string, qty int) *cards.Card {
	return &cards.Card{
		Object:     cards.ObjectCard,
		ScryfallID: id,
		Lang:       lang,
		Quantity:   qty,
		Name:       "Card " + id,
	}
}

func openStore(t *testing.T, name string, list []*cards.Card) *cardstore.Reader {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	meta := cards.Metadata{Name: name, Type: cards.StoreInventory}
	require.NoError(t, cardstore.Save(path, meta, list))
	reader, err := cardstore.Open(path)
	require.NoError(t, err)
	return reader
}

func TestStoresAddedRemoved(t *testing.T) {
	baseline := openStore(t, "baseline.json", []*cards.Card{
		card("a", "en", 2),
		card("b", "en", 1),
	})
	comparison := openStore(t, "comparison.json", []*cards.Card{
		card("a", "en", 2),
		card("c", "en", 3),
	})

	changeset, err := Stores(baseline, comparison)
	require.NoError(t, err)

	assert.Equal(t, []cards.Key{cards.MakeKey("c", nil, "en")}, changeset.Added)
	assert.Equal(t, []cards.Key{cards.MakeKey("b", nil, "en")}, changeset.Removed)
	assert.Empty(t, changeset.Changed)
	assert.False(t, changeset.Empty())
}

func TestStoresQuantityDelta(t *testing.T) {
	baseline := openStore(t, "baseline.json", []*cards.Card{card("a", "en", 2)})
	comparison := openStore(t, "comparison.json", []*cards.Card{card("a", "en", 5)})

	changeset, err := Stores(baseline, comparison)
	require.NoError(t, err)

	key := cards.MakeKey("a", nil, "en")
	assert.Empty(t, changeset.Added)
	assert.Empty(t, changeset.Removed)
	assert.Equal(t, map[cards.Key]int{key: 3}, changeset.Changed)
}

func TestStoresIdentical(t *testing.T) {
	list := []*cards.Card{card("a", "en", 2), card("b", "en", 1)}
	baseline := openStore(t, "baseline.json", list)
	comparison := openStore(t, "comparison.json", list)

	changeset, err := Stores(baseline, comparison)
	require.NoError(t, err)
	assert.True(t, changeset.Empty())
}

func TestStoresFoilAndLangAreDistinct(t *testing.T) {
	foil := "foil"
	baseline := openStore(t, "baseline.json", []*cards.Card{card("a", "en", 1)})
	comparison := openStore(t, "comparison.json", []*cards.Card{
		card("a", "en", 1),
		{Object: cards.ObjectCard, ScryfallID: "a", Foil: &foil, Lang: "en", Quantity: 1},
		card("a", "ja", 1),
	})

	changeset, err := Stores(baseline, comparison)
	require.NoError(t, err)

	require.Len(t, changeset.Added, 2)
	assert.Empty(t, changeset.Removed)
	assert.Empty(t, changeset.Changed)
}

func TestStoresSumsDuplicateRecords(t *testing.T) {
	baseline := openStore(t, "baseline.json", []*cards.Card{card("a", "en", 1)})
	comparison := openStore(t, "comparison.json", []*cards.Card{
		card("a", "en", 2),
		card("a", "en", 3), // same identity, quantities sum to 5
	})

	changeset, err := Stores(baseline, comparison)
	require.NoError(t, err)
	assert.Equal(t, map[cards.Key]int{cards.MakeKey("a", nil, "en"): 4}, changeset.Changed)
}

func TestStoresSkipsNonPositiveQuantities(t *testing.T) {
	baseline := openStore(t, "baseline.json", nil)
	comparison := openStore(t, "comparison.json", []*cards.Card{
		card("a", "en", 1),
		card("b", "en", 0),
		card("c", "en", -2),
	})

	var skipped []cards.Key
	changeset, err := Stores(baseline, comparison,
		WithDiagnostics(func(_ string, key cards.Key, _ int) {
			skipped = append(skipped, key)
		}))
	require.NoError(t, err)

	assert.Equal(t, []cards.Key{cards.MakeKey("a", nil, "en")}, changeset.Added)
	assert.Len(t, skipped, 2)
}

func TestStoresExportableOnly(t *testing.T) {
	deckCard := card("d", "en", 1)
	deckCard.Filename = "deck.csv"
	meta := cards.Metadata{
		Type:   cards.StoreInventory,
		Groups: map[cards.GroupKind][]string{cards.GroupDecks: {"deck.csv"}},
	}

	basePath := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, cardstore.Save(basePath, meta, []*cards.Card{card("a", "en", 1)}))
	compPath := filepath.Join(t.TempDir(), "comparison.json")
	require.NoError(t, cardstore.Save(compPath, meta, []*cards.Card{card("a", "en", 1), deckCard}))

	baseline, err := cardstore.Open(basePath)
	require.NoError(t, err)
	comparison, err := cardstore.Open(compPath)
	require.NoError(t, err)

	changeset, err := Stores(baseline, comparison, ExportableOnly())
	require.NoError(t, err)
	assert.True(t, changeset.Empty(), "grouped cards are invisible to an exportable-only diff")
}

func TestStoresSortedOutput(t *testing.T) {
	baseline := openStore(t, "baseline.json", nil)
	comparison := openStore(t, "comparison.json", []*cards.Card{
		card("z", "en", 1),
		card("m", "en", 1),
		card("a", "en", 1),
	})

	changeset, err := Stores(baseline, comparison)
	require.NoError(t, err)

	require.Len(t, changeset.Added, 3)
	assert.True(t, changeset.Added[0] < changeset.Added[1])
	assert.True(t, changeset.Added[1] < changeset.Added[2])
}
