package scan_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch"
	"github.com/ue4ss-tools/modswitch/scan"
)

func touch(t *testing.T, fsys billy.Filesystem, path string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, path, nil, 0644))
}

func TestDiscover(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods/Alpha/scripts/main.lua")
	touch(t, fsys, "mods/Alpha/scripts/util.lua")
	touch(t, fsys, "mods/Bravo/Scripts/MAIN.LUA")
	touch(t, fsys, "mods/Native/dlls/main.dll")
	touch(t, fsys, "mods/NoEntry/scripts/helper.lua")
	touch(t, fsys, "mods/NoScripts/readme.md")
	touch(t, fsys, "mods/shared/scripts/main.lua")
	touch(t, fsys, "mods/stray.txt")
	require.NoError(t, fsys.MkdirAll("mods/EmptyScripts/scripts", 0755))

	mods, err := scan.Discover(fsys, "mods")
	require.NoError(t, err)

	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	require.Equal(t, []string{"Alpha", "Bravo", "Native"}, names)

	require.Equal(t, modswitch.LangLua, mods[0].Lang)
	require.Len(t, mods[0].Scripts, 2)
	require.Equal(t, "mods/Alpha", mods[0].Path)

	// Case differences in the scripts folder and entry file still count.
	require.Equal(t, modswitch.LangLua, mods[1].Lang)

	require.Equal(t, modswitch.LangCpp, mods[2].Lang)

	for _, m := range mods {
		require.False(t, m.Enabled)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	fsys := memfs.New()
	_, err := scan.Discover(fsys, "mods")
	require.ErrorIs(t, err, modswitch.ErrDirectoryNotFound)
}

func TestDiscoverRootIsFile(t *testing.T) {
	fsys := memfs.New()
	touch(t, fsys, "mods")
	_, err := scan.Discover(fsys, "mods")
	require.ErrorIs(t, err, modswitch.ErrDirectoryNotFound)
}

func TestDiscoverEmptyRoot(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("mods", 0755))
	mods, err := scan.Discover(fsys, "mods")
	require.NoError(t, err)
	require.Empty(t, mods)
}
