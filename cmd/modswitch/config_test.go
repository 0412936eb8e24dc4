package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultConfig)
	src := `mods = "game/UE4SS/Mods"

save {
  markers = true
  json    = true
}

profile "speedrun" {
  enable = ["SpeedMod", "HUDTweaks"]
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cfg, ok := loadConfig(path)
	require.True(t, ok)
	require.Equal(t, "game/UE4SS/Mods", cfg.Mods)

	modes := cfg.modes()
	require.True(t, modes.Markers)
	require.True(t, modes.JSON)
	require.False(t, modes.Text)

	p, ok := cfg.profile("speedrun")
	require.True(t, ok)
	require.Equal(t, []string{"SpeedMod", "HUDTweaks"}, p.Enable)

	_, ok = cfg.profile("missing")
	require.False(t, ok)
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, ok := loadConfig(filepath.Join(t.TempDir(), "none.conf"))
	require.True(t, ok)
	require.Empty(t, cfg.Mods)

	// All three representations are written by default.
	modes := cfg.modes()
	require.True(t, modes.Markers)
	require.True(t, modes.JSON)
	require.True(t, modes.Text)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultConfig)
	require.NoError(t, os.WriteFile(path, []byte("mods = [\n"), 0644))

	_, ok := loadConfig(path)
	require.False(t, ok)
}
