package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
search:
  pattern: draw a card
  caseInsensitive: true
  wordBoundary: true
  fields: oracle_text
formats: modern:legacy
colorIdentity: w:u
cmc: "5"
keywords: flying
`)

	f, err := LoadPreset(path)
	require.NoError(t, err)
	require.NotNil(t, f.Search)
	require.NotNil(t, f.CMC)
	assert.Equal(t, 5.0, *f.CMC)
	assert.Equal(t, []cards.Format{cards.FormatModern, cards.FormatLegacy}, f.Formats)
	assert.Equal(t, []string{"W", "U"}, f.ColorIdentity)

	card := testCard()
	card.OracleText = strptr("Flying. When this enters, draw a card.")
	assert.True(t, f.Match(card))
}

func TestLoadPresetValidation(t *testing.T) {
	t.Run("DuplicateFormat", func(t *testing.T) {
		path := writePreset(t, "formats: modern:modern\n")
		_, err := LoadPreset(path)
		require.Error(t, err)
	})

	t.Run("BadYAML", func(t *testing.T) {
		path := writePreset(t, "formats: [unterminated\n")
		_, err := LoadPreset(path)
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("BadSearchPattern", func(t *testing.T) {
		path := writePreset(t, "search:\n  pattern: '('\n")
		_, err := LoadPreset(path)
		require.Error(t, err)
	})
}
