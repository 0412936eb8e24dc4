// Package scan discovers UE4SS mod folders under a mods directory.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/ue4ss-tools/modswitch"
)

const (
	scriptsDir = "scripts"
	dllsDir    = "dlls"
	luaEntry   = "main.lua"
	dllEntry   = "main.dll"

	// The Shared folder holds library code for other mods and is never
	// a mod itself.
	sharedDir = "shared"
)

// Discover lists the qualifying mod folders directly under root, sorted
// by name. A folder qualifies when its scripts directory contains
// main.lua or its dlls directory contains main.dll; folders without an
// entry point are skipped, not reported as errors.
func Discover(fsys billy.Filesystem, root string) ([]modswitch.Mod, error) {
	fi, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", modswitch.ErrDirectoryNotFound, root)
		}
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", modswitch.ErrDirectoryNotFound, root)
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var mods []modswitch.Mod
	for _, e := range entries {
		if !e.IsDir() || strings.EqualFold(e.Name(), sharedDir) {
			continue
		}
		m, ok := probe(fsys, fsys.Join(root, e.Name()), e.Name())
		if !ok {
			continue
		}
		mods = append(mods, m)
	}

	sort.Slice(mods, func(i, j int) bool {
		return mods[i].Name < mods[j].Name
	})
	return mods, nil
}

func probe(fsys billy.Filesystem, dir, name string) (modswitch.Mod, bool) {
	lua := entryFiles(fsys, dir, scriptsDir, ".lua")
	dll := entryFiles(fsys, dir, dllsDir, ".dll")

	m := modswitch.Mod{
		Name:    name,
		Path:    dir,
		Scripts: append(lua, dll...),
	}
	switch {
	case containsFold(lua, luaEntry):
		m.Lang = modswitch.LangLua
	case containsFold(dll, dllEntry):
		m.Lang = modswitch.LangCpp
	default:
		log.Debug("skipping folder without entry point", "folder", name)
		return modswitch.Mod{}, false
	}
	log.Debug("discovered mod", "mod", name, "lang", m.Lang, "scripts", len(m.Scripts))
	return m, true
}

// entryFiles lists files with the given extension inside the named child
// directory. The child name and extension are matched case-insensitively
// since mod archives are assembled on filesystems with varying case
// rules.
func entryFiles(fsys billy.Filesystem, dir, child, ext string) []string {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil
	}
	sub := ""
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), child) {
			sub = e.Name()
			break
		}
	}
	if sub == "" {
		return nil
	}
	files, err := fsys.ReadDir(fsys.Join(dir, sub))
	if err != nil {
		return nil
	}
	var names []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if strings.EqualFold(path.Ext(f.Name()), ext) {
			names = append(names, f.Name())
		}
	}
	return names
}

func containsFold(names []string, want string) bool {
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return true
		}
	}
	return false
}
