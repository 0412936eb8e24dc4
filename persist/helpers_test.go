package persist_test

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/ue4ss-tools/modswitch"
)

func writeFile(t *testing.T, fsys billy.Filesystem, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0644))
}

func readFile(t *testing.T, fsys billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

// snapshot is a typical mixed state: two enabled mods around a disabled
// one, in discovery order.
func snapshot() []modswitch.Mod {
	return []modswitch.Mod{
		{Name: "Alpha", Path: "mods/Alpha", Enabled: true},
		{Name: "Bravo", Path: "mods/Bravo"},
		{Name: "Charlie", Path: "mods/Charlie", Enabled: true},
	}
}
