package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch"
)

func TestSearchModsDir(t *testing.T) {
	dir := t.TempDir()
	mods := filepath.Join(dir, "game", "UE4SS", "Mods")
	require.NoError(t, os.MkdirAll(mods, 0755))

	// From the game root: finds UE4SS/Mods below it.
	got, err := searchModsDir(filepath.Join(dir, "game"))
	require.NoError(t, err)
	require.Equal(t, mods, got)

	// From inside the Mods folder itself.
	got, err = searchModsDir(mods)
	require.NoError(t, err)
	require.Equal(t, mods, got)

	// From the UE4SS folder: finds its Mods child.
	got, err = searchModsDir(filepath.Join(dir, "game", "UE4SS"))
	require.NoError(t, err)
	require.Equal(t, mods, got)

	// From a sibling of Mods, one level down.
	other := filepath.Join(dir, "game", "UE4SS", "Binaries")
	require.NoError(t, os.MkdirAll(other, 0755))
	got, err = searchModsDir(other)
	require.NoError(t, err)
	require.Equal(t, mods, got)
}

func TestSearchModsDirCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	mods := filepath.Join(dir, "ue4ss", "mods")
	require.NoError(t, os.MkdirAll(mods, 0755))

	got, err := searchModsDir(mods)
	require.NoError(t, err)
	require.Equal(t, mods, got)
}

func TestSearchModsDirMissing(t *testing.T) {
	_, err := searchModsDir(t.TempDir())
	require.ErrorIs(t, err, modswitch.ErrDirectoryNotFound)
}

func TestFindModsDirPrecedence(t *testing.T) {
	cfg := Config{Mods: "from-config"}
	got, err := findModsDir("from-flag", cfg)
	require.NoError(t, err)
	require.Equal(t, "from-flag", got)

	got, err = findModsDir("", cfg)
	require.NoError(t, err)
	require.Equal(t, "from-config", got)
}
