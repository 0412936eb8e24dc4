// Package store holds the in-memory enablement state between discovery
// and save.
package store

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/ue4ss-tools/modswitch"
	"github.com/ue4ss-tools/modswitch/persist"
	"github.com/ue4ss-tools/modswitch/scan"
)

// Store is the believed enabled state for every discovered mod. It is
// the only mutable state in the program: the shell constructs one,
// mutates it through Set and SetAll, and hands it to Save. All
// mutations are pure in-memory operations.
type Store struct {
	fsys   billy.Filesystem
	root   string
	mods   []modswitch.Mod
	byName map[string]int
}

// Load discovers mods under root and seeds their enabled flags. Sources
// are consulted per mod in a fixed order: the enabled.txt marker, then
// mods.json, then mods.txt; the first source with a definitive answer
// wins. A marker can only assert "enabled" (its absence says nothing),
// a malformed aggregate contributes nothing, and a mod no source
// mentions starts disabled.
func Load(fsys billy.Filesystem, root string) (*Store, error) {
	mods, err := scan.Discover(fsys, root)
	if err != nil {
		return nil, err
	}

	fromJSON, err := persist.ReadJSON(fsys, root)
	if err != nil {
		if !errors.Is(err, modswitch.ErrParse) {
			return nil, err
		}
		log.Warn("ignoring aggregate", "err", err)
	}
	fromTxt, err := persist.ReadTxt(fsys, root)
	if err != nil {
		return nil, err
	}

	s := &Store{
		fsys:   fsys,
		root:   root,
		mods:   mods,
		byName: make(map[string]int, len(mods)),
	}
	for i := range s.mods {
		m := &s.mods[i]
		s.byName[m.Name] = i
		switch {
		case persist.ReadMarker(fsys, m.Path):
			m.Enabled = true
		default:
			if v, ok := fromJSON[m.Name]; ok {
				m.Enabled = v
			} else if v, ok := fromTxt[m.Name]; ok {
				m.Enabled = v
			}
		}
		log.Debug("loaded mod state", "mod", m.Name, "enabled", m.Enabled)
	}
	return s, nil
}

// Root returns the mods directory path the store was loaded from.
func (s *Store) Root() string { return s.root }

// Mods returns the mods in discovery order. The returned slice is a
// copy; mutate state through Set and SetAll.
func (s *Store) Mods() []modswitch.Mod {
	out := make([]modswitch.Mod, len(s.mods))
	copy(out, s.mods)
	return out
}

// Enabled returns the names of enabled mods in discovery order.
func (s *Store) Enabled() []string {
	var names []string
	for _, m := range s.mods {
		if m.Enabled {
			names = append(names, m.Name)
		}
	}
	return names
}

// Set flips one mod in memory. It performs no I/O and is idempotent.
func (s *Store) Set(name string, enabled bool) error {
	i, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", modswitch.ErrUnknownMod, name)
	}
	s.mods[i].Enabled = enabled
	return nil
}

// SetAll sets every known mod to the given value in one operation.
func (s *Store) SetAll(enabled bool) {
	for i := range s.mods {
		s.mods[i].Enabled = enabled
	}
}

// Save writes the current state through every serializer selected in
// opts and returns the accumulated failures.
func (s *Store) Save(opts persist.Options) persist.Report {
	return persist.Save(s.fsys, s.root, s.mods, opts)
}
