package persist_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch/persist"
)

func TestTxtWrite(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	require.NoError(t, persist.WriteTxt(fsys, "mods", snapshot()))

	require.Equal(t, "Alpha : 1\nCharlie : 1\n", readFile(t, fsys, "mods/mods.txt"))
}

func TestTxtRoundTrip(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	require.NoError(t, persist.WriteTxt(fsys, "mods", snapshot()))

	state, err := persist.ReadTxt(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true, "Charlie": true}, state)
}

func TestTxtRead(t *testing.T) {
	fsys := memfs.New()
	writeFile(t, fsys, "mods/mods.txt", "Alpha : 1\n\nBravo : 0\nCharlie\n   \nGone : 1\n")

	state, err := persist.ReadTxt(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{
		"Alpha":   true,
		"Bravo":   false,
		"Charlie": true,
		// Names of mods no longer on disk still parse; the store is
		// the one that ignores them.
		"Gone": true,
	}, state)
}

func TestTxtReadMissing(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))

	state, err := persist.ReadTxt(fsys, "mods")
	require.NoError(t, err)
	require.Empty(t, state)
}
