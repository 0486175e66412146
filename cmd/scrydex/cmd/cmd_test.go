package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typhonjs-tcg/scrydex-sub001/internal/appcontext"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cards"
	"github.com/typhonjs-tcg/scrydex-sub001/pkg/cardstore"
)

func run(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	require.NoError(t, c.Execute())
	return out.String()
}

func writeTestStore(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	meta := cards.Metadata{Type: cards.StoreInventory}
	list := []*cards.Card{
		{ScryfallID: "a", Lang: "en", Quantity: 2, Name: "Serra Angel", TypeLine: "Creature", CMC: 5},
		{ScryfallID: "b", Lang: "en", Quantity: 1, Name: "Lightning Bolt", TypeLine: "Instant", CMC: 1},
	}
	require.NoError(t, cardstore.Save(path, meta, list))
	return path
}

func TestFindCommand(t *testing.T) {
	path := writeTestStore(t, t.TempDir(), "inv.json")

	out := run(t, NewFindCommand(&appcontext.Mock{}), path, "--cmc", "5")
	assert.Contains(t, out, "Serra Angel")
	assert.NotContains(t, out, "Lightning Bolt")
	assert.Contains(t, out, "1 matching cards")
}

func TestFindCommandDefaultsToStoreDir(t *testing.T) {
	dir := t.TempDir()
	writeTestStore(t, dir, "inv.json")

	app := &appcontext.Mock{StoreDirFunc: func() string { return dir }}
	out := run(t, NewFindCommand(app))
	assert.Contains(t, out, "2 matching cards")
}

func TestFindCommandRejectsBadFlag(t *testing.T) {
	c := NewFindCommand(&appcontext.Mock{})
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--colors", "W:X", t.TempDir()})
	assert.Error(t, c.Execute())
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	source := writeTestStore(t, dir, "inv.json")
	target := filepath.Join(dir, "instants.json")

	out := run(t, NewFilterCommand(&appcontext.Mock{}), source, target, "--cmc", "1")
	assert.Contains(t, out, "Wrote 1 cards")

	reader, err := cardstore.Open(target)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, cards.StoreSorted, reader.Metadata().Type)

	all, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Lightning Bolt", all[0].Name)
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.json")
	comp := filepath.Join(dir, "comp.json")
	meta := cards.Metadata{Type: cards.StoreInventory}
	require.NoError(t, cardstore.Save(base, meta, []*cards.Card{
		{ScryfallID: "a", Lang: "en", Quantity: 2},
	}))
	require.NoError(t, cardstore.Save(comp, meta, []*cards.Card{
		{ScryfallID: "a", Lang: "en", Quantity: 5},
		{ScryfallID: "b", Lang: "en", Quantity: 1},
	}))

	out := run(t, NewDiffCommand(&appcontext.Mock{}), base, comp)
	assert.Contains(t, out, "+ b|")
	assert.Contains(t, out, "+3")
	assert.Contains(t, out, "1 added, 0 removed, 1 changed")
}

func TestDiffCommandNoDifferences(t *testing.T) {
	dir := t.TempDir()
	path := writeTestStore(t, dir, "inv.json")
	other := writeTestStore(t, dir, "same.json")

	out := run(t, NewDiffCommand(&appcontext.Mock{}), path, other)
	assert.Contains(t, out, "No differences")
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestStore(t, dir, "inv.json")

	out := run(t, NewListCommand(&appcontext.Mock{}), dir)
	assert.Contains(t, out, "name: inv")
	assert.Contains(t, out, "type: inventory")
}

func TestListCommandEmptyDir(t *testing.T) {
	out := run(t, NewListCommand(&appcontext.Mock{}), t.TempDir())
	assert.Contains(t, out, "No card databases found")
}

func TestVersionCommand(t *testing.T) {
	app := &appcontext.Mock{VersionFunc: func() string { return "1.2.3" }}
	out := run(t, NewVersionCommand(app))
	assert.True(t, strings.HasPrefix(out, "scrydex version 1.2.3"))
}
