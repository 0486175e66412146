package cardstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/errors"
)

func closeAll(t *testing.T, readers []*Reader) {
	t.Helper()
	for _, r := range readers {
		_ = r.Close()
	}
}

func TestOpenDirErrors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := OpenDir(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("FileNotDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		_, err := OpenDir(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidPath(err))
	})
}

func TestOpenDirResilience(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, "good.json"), testMeta(), testCards()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "no-meta.json"), []byte(`{"cards":[]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a store"), 0o644))

	readers, err := OpenDir(dir)
	require.NoError(t, err, "a corrupt entry must not fail the whole scan")
	defer closeAll(t, readers)

	require.Len(t, readers, 1)
	assert.Equal(t, "test-collection", readers[0].Metadata().Name)
}

func TestOpenDirTypeAndFormatFilters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, "a-inventory.json"),
		cards.Metadata{Type: cards.StoreInventory}, nil))
	require.NoError(t, Save(filepath.Join(dir, "b-sorted.json"),
		cards.Metadata{Type: cards.StoreSorted}, nil))
	require.NoError(t, Save(filepath.Join(dir, "c-modern.json"),
		cards.Metadata{Type: cards.StoreSortedFormat, Format: cards.FormatModern}, nil))
	require.NoError(t, Save(filepath.Join(dir, "d-legacy.json"),
		cards.Metadata{Type: cards.StoreSortedFormat, Format: cards.FormatLegacy}, nil))

	t.Run("NoFilters", func(t *testing.T) {
		readers, err := OpenDir(dir)
		require.NoError(t, err)
		defer closeAll(t, readers)
		assert.Len(t, readers, 4)
	})

	t.Run("TypeFilter", func(t *testing.T) {
		readers, err := OpenDir(dir, WithTypes(cards.StoreInventory, cards.StoreSorted))
		require.NoError(t, err)
		defer closeAll(t, readers)
		require.Len(t, readers, 2)
		// Discovery order is preserved (lexical walk order).
		assert.Equal(t, "a-inventory", readers[0].Metadata().Name)
		assert.Equal(t, "b-sorted", readers[1].Metadata().Name)
	})

	t.Run("FormatFilter", func(t *testing.T) {
		readers, err := OpenDir(dir,
			WithTypes(cards.StoreSortedFormat),
			WithFormats(cards.FormatModern))
		require.NoError(t, err)
		defer closeAll(t, readers)
		require.Len(t, readers, 1)
		assert.Equal(t, "c-modern", readers[0].Metadata().Name)
	})

	t.Run("FormatFilterExcludesOtherTypes", func(t *testing.T) {
		readers, err := OpenDir(dir, WithFormats(cards.FormatModern))
		require.NoError(t, err)
		defer closeAll(t, readers)
		require.Len(t, readers, 1)
		assert.Equal(t, cards.StoreSortedFormat, readers[0].Metadata().Type)
	})
}

func TestOpenDirRecursion(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Empty names default from the file base name, keeping the two
	// stores distinguishable by envelope.
	meta := cards.Metadata{Type: cards.StoreInventory}
	require.NoError(t, Save(filepath.Join(dir, "top.json"), meta, nil))
	require.NoError(t, Save(filepath.Join(sub, "deep.json"), meta, nil))

	t.Run("FlatByDefault", func(t *testing.T) {
		readers, err := OpenDir(dir)
		require.NoError(t, err)
		defer closeAll(t, readers)
		require.Len(t, readers, 1)
		assert.Equal(t, "top", readers[0].Metadata().Name)
	})

	t.Run("Recursive", func(t *testing.T) {
		readers, err := OpenDir(dir, Recursive())
		require.NoError(t, err)
		defer closeAll(t, readers)
		require.Len(t, readers, 2)
		names := []string{readers[0].Metadata().Name, readers[1].Metadata().Name}
		assert.ElementsMatch(t, []string{"top", "deep"}, names)
	})
}

func TestOpenDirEmpty(t *testing.T) {
	readers, err := OpenDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, readers)
}
