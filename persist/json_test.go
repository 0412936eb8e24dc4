package persist_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch"
	"github.com/ue4ss-tools/modswitch/persist"
)

func TestJSONRoundTrip(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	require.NoError(t, persist.WriteJSON(fsys, "mods", snapshot()))

	state, err := persist.ReadJSON(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true, "Charlie": true}, state)
}

func TestJSONOmitsDisabled(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	require.NoError(t, persist.WriteJSON(fsys, "mods", snapshot()))

	data := readFile(t, fsys, "mods/mods.json")
	require.Contains(t, data, `"mod_name": "Alpha"`)
	require.NotContains(t, data, "Bravo")
}

func TestJSONLeavesNoTempFiles(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	require.NoError(t, persist.WriteJSON(fsys, "mods", snapshot()))
	require.NoError(t, persist.WriteJSON(fsys, "mods", snapshot()))

	entries, err := fsys.ReadDir("mods")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, persist.JSONName, entries[0].Name())
}

func TestJSONReadBOM(t *testing.T) {
	fsys := memfs.New()
	writeFile(t, fsys, "mods/mods.json",
		"\xef\xbb\xbf"+`[{"mod_name": "Alpha", "mod_enabled": true}]`)

	state, err := persist.ReadJSON(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true}, state)
}

func TestJSONReadExplicitFalse(t *testing.T) {
	fsys := memfs.New()
	writeFile(t, fsys, "mods/mods.json",
		`[{"mod_name": "Alpha", "mod_enabled": true}, {"mod_name": "Bravo", "mod_enabled": false}]`)

	state, err := persist.ReadJSON(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true, "Bravo": false}, state)
}

func TestJSONReadMalformed(t *testing.T) {
	fsys := memfs.New()
	writeFile(t, fsys, "mods/mods.json", "{oops")

	_, err := persist.ReadJSON(fsys, "mods")
	require.ErrorIs(t, err, modswitch.ErrParse)
}

func TestJSONReadMissing(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	state, err := persist.ReadJSON(fsys, "mods")
	require.NoError(t, err)
	require.Empty(t, state)
}
