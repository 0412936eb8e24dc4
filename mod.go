// Package modswitch toggles enablement of UE4SS mods by maintaining the
// three on-disk representations the loader understands: per-mod
// enabled.txt markers, mods.json and mods.txt.
package modswitch

const (
	// LangLua marks a script mod with a scripts/main.lua entry point.
	LangLua = "lua"
	// LangCpp marks a native mod with a dlls/main.dll entry point.
	LangCpp = "cpp"
)

type Mod struct {
	// Name is the mod folder name, unique within the mods directory.
	Name string

	// Path is the mod directory path within the mods filesystem.
	Path string

	// Scripts lists the entry files found under scripts/ and dlls/.
	Scripts []string

	// Lang is either LangLua or LangCpp.
	Lang string

	// Enabled is the in-memory enablement flag. The persisted
	// representations are derived from it on save, never mutated
	// directly.
	Enabled bool
}
