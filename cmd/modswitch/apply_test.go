package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch/persist"
)

func touchFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestApplyProfile(t *testing.T) {
	dir := t.TempDir()
	mods := filepath.Join(dir, "UE4SS", "Mods")
	touchFile(t, filepath.Join(mods, "Alpha", "scripts", "main.lua"))
	touchFile(t, filepath.Join(mods, "Bravo", "scripts", "main.lua"))
	touchFile(t, filepath.Join(mods, "Charlie", "scripts", "main.lua"))

	// Bravo starts enabled but the profile does not name it.
	touchFile(t, filepath.Join(mods, "Bravo", "enabled.txt"))

	cfgPath := filepath.Join(dir, defaultConfig)
	cfg := `profile "lean" {
  enable = ["Alpha", "LongGone"]
}
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	cmd := &ApplyCommand{Profile: "lean", Mods: mods, Config: cfgPath}
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)

	// LongGone is not on disk anymore; apply warns and still succeeds.
	require.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), fs))

	// Everything outside the profile ends up disabled in all three
	// representations.
	fsys := osfs.New(mods)
	require.True(t, persist.ReadMarker(fsys, "Alpha"))
	require.False(t, persist.ReadMarker(fsys, "Bravo"))
	require.False(t, persist.ReadMarker(fsys, "Charlie"))

	state, err := persist.ReadJSON(fsys, ".")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true}, state)

	state, err = persist.ReadTxt(fsys, ".")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"Alpha": true}, state)
}

func TestApplyUnknownProfile(t *testing.T) {
	dir := t.TempDir()
	mods := filepath.Join(dir, "UE4SS", "Mods")
	touchFile(t, filepath.Join(mods, "Alpha", "scripts", "main.lua"))

	cmd := &ApplyCommand{Profile: "nope", Mods: mods, Config: filepath.Join(dir, defaultConfig)}
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	require.Equal(t, subcommands.ExitFailure, cmd.Execute(context.Background(), fs))
}

func TestApplyMissingProfileFlag(t *testing.T) {
	cmd := &ApplyCommand{}
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	require.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), fs))
}
