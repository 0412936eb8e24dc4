package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/ue4ss-tools/modswitch"
)

// JSONName is the aggregate document the UE4SS loader reads.
const JSONName = "mods.json"

type jsonEntry struct {
	Name    string `json:"mod_name"`
	Enabled bool   `json:"mod_enabled"`
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// WriteJSON replaces mods.json with the enabled subset of the snapshot,
// in snapshot order. The loader treats listed entries as authoritative,
// so disabled mods are omitted rather than written as false.
func WriteJSON(fsys billy.Filesystem, root string, snapshot []modswitch.Mod) error {
	entries := make([]jsonEntry, 0, len(snapshot))
	for _, m := range snapshot {
		if !m.Enabled {
			continue
		}
		entries = append(entries, jsonEntry{Name: m.Name, Enabled: true})
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return writeFileAtomic(fsys, root, JSONName, data)
}

// ReadJSON returns the name to enabled mapping from mods.json. A missing
// file yields an empty map. Malformed content yields an error wrapping
// modswitch.ErrParse; callers treat that as "no information" and fall
// through to the next state source.
func ReadJSON(fsys billy.Filesystem, root string) (map[string]bool, error) {
	data, err := util.ReadFile(fsys, fsys.Join(root, JSONName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	// Some UE4SS installs ship mods.json with a UTF-8 BOM.
	data = bytes.TrimPrefix(data, utf8BOM)

	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", modswitch.ErrParse, JSONName, err)
	}
	state := make(map[string]bool, len(entries))
	for _, e := range entries {
		state[e.Name] = e.Enabled
	}
	return state, nil
}
