package store_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch"
	"github.com/ue4ss-tools/modswitch/persist"
	"github.com/ue4ss-tools/modswitch/store"
)

func touch(t *testing.T, fsys billy.Filesystem, path string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, path, nil, 0644))
}

func writeFile(t *testing.T, fsys billy.Filesystem, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0644))
}

func TestFreshInstall(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	touch(t, fsys, "mods/Bravo/scripts/main.lua")
	touch(t, fsys, "mods/NoScripts/readme.md")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)

	ms := st.Mods()
	require.Len(t, ms, 2)
	require.False(t, ms[0].Enabled)
	require.False(t, ms[1].Enabled)
	require.Empty(t, st.Enabled())

	require.NoError(t, st.Set("Alpha", true))
	rep := st.Save(persist.Options{Markers: true, JSON: true, Text: true})
	require.True(t, rep.OK())

	require.True(t, persist.ReadMarker(fsys, "mods/Alpha"))
	require.False(t, persist.ReadMarker(fsys, "mods/Bravo"))

	state, err := persist.ReadJSON(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true}, state)

	data, err := util.ReadFile(fsys, "mods/mods.txt")
	require.NoError(t, err)
	require.Equal(t, "Alpha : 1\n", string(data))
}

func TestMarkerBeatsAggregates(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	touch(t, fsys, "mods/Alpha/enabled.txt")
	writeFile(t, fsys, "mods/mods.json", `[{"mod_name": "Alpha", "mod_enabled": false}]`)
	writeFile(t, fsys, "mods/mods.txt", "Alpha : 0\n")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)
	require.True(t, st.Mods()[0].Enabled)
}

func TestJSONBeatsTxt(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	writeFile(t, fsys, "mods/mods.json", `[{"mod_name": "Alpha", "mod_enabled": false}]`)
	writeFile(t, fsys, "mods/mods.txt", "Alpha : 1\n")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)
	require.False(t, st.Mods()[0].Enabled)
}

func TestTxtFallback(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	touch(t, fsys, "mods/Bravo/scripts/main.lua")
	writeFile(t, fsys, "mods/mods.txt", "Alpha : 1\nStale : 1\n")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha"}, st.Enabled())
}

func TestMalformedJSONFallsThrough(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	writeFile(t, fsys, "mods/mods.json", "{oops")
	writeFile(t, fsys, "mods/mods.txt", "Alpha : 1\n")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)
	require.True(t, st.Mods()[0].Enabled)
}

func TestSetUnknownMod(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)

	err = st.Set("Zulu", true)
	require.ErrorIs(t, err, modswitch.ErrUnknownMod)

	// Set is idempotent and pure in-memory.
	require.NoError(t, st.Set("Alpha", true))
	require.NoError(t, st.Set("Alpha", true))
	require.False(t, persist.ReadMarker(fsys, "mods/Alpha"))
}

func TestSetAll(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	touch(t, fsys, "mods/Bravo/scripts/main.lua")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)

	st.SetAll(true)
	require.Equal(t, []string{"Alpha", "Bravo"}, st.Enabled())

	st.SetAll(false)
	require.Empty(t, st.Enabled())
}

func TestModsReturnsCopy(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)

	ms := st.Mods()
	ms[0].Enabled = true
	require.Empty(t, st.Enabled())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	touch(t, fsys, "mods/Bravo/scripts/main.lua")
	touch(t, fsys, "mods/Charlie/scripts/main.lua")

	st, err := store.Load(fsys, "mods")
	require.NoError(t, err)
	require.NoError(t, st.Set("Alpha", true))
	require.NoError(t, st.Set("Charlie", true))
	require.True(t, st.Save(persist.Options{Markers: true, JSON: true, Text: true}).OK())

	st2, err := store.Load(fsys, "mods")
	require.NoError(t, err)
	require.Equal(t, []string{"Alpha", "Charlie"}, st2.Enabled())
}
