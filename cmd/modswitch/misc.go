package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/subcommands"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/ue4ss-tools/modswitch"
	"github.com/ue4ss-tools/modswitch/persist"
	"github.com/ue4ss-tools/modswitch/store"
)

func newDiagWr(p *hclparse.Parser) (diagWr hcl.DiagnosticWriter, color bool) {
	files := p.Files()
	stderr := os.Stderr
	fd := int(stderr.Fd())
	istty, color := fdinfo(fd)
	if !istty {
		return hcl.NewDiagnosticTextWriter(stderr, files, 80, color), color
	}
	var width uint = 80
	if w, _, err := terminal.GetSize(fd); err != nil {
		log.Debug("get term size", "err", err)
	} else if w > 0 {
		width = uint(w)
	}
	return hcl.NewDiagnosticTextWriter(stderr, files, width, color), color
}

func fdinfo(fd int) (istty, color bool) {
	istty = terminal.IsTerminal(fd)
	if istty {
		color = true
	}
	// See https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}
	return
}

// findModsDir resolves the UE4SS Mods directory: the explicit flag wins,
// then the config, then an upward search from the working directory.
func findModsDir(flagPath string, cfg Config) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if cfg.Mods != "" {
		return cfg.Mods, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return searchModsDir(wd)
}

// searchModsDir walks up from dir looking for the conventional
// UE4SS/Mods layout, so the tool works when dropped anywhere inside a
// game install.
func searchModsDir(dir string) (string, error) {
	cur := dir
	for i := 0; i < 4; i++ {
		if isModsDir(cur) {
			return cur, nil
		}
		p := filepath.Join(cur, "Mods")
		if isModsDir(p) {
			return p, nil
		}
		p = filepath.Join(cur, "UE4SS", "Mods")
		if fi, err := os.Stat(p); err == nil && fi.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return "", fmt.Errorf("%w: no UE4SS/Mods directory above %s", modswitch.ErrDirectoryNotFound, dir)
}

func isModsDir(p string) bool {
	fi, err := os.Stat(p)
	if err != nil || !fi.IsDir() {
		return false
	}
	return strings.EqualFold(filepath.Base(p), "Mods") &&
		strings.EqualFold(filepath.Base(filepath.Dir(p)), "UE4SS")
}

// openStore loads the config and the mod state for a command.
func openStore(modsFlag, cfgPath string) (*store.Store, Config, bool) {
	cfg, ok := loadConfig(cfgPath)
	if !ok {
		return nil, cfg, false
	}
	root, err := findModsDir(modsFlag, cfg)
	if err != nil {
		log.Error("locate mods directory", "err", err)
		return nil, cfg, false
	}
	st, err := store.Load(osfs.New(root), ".")
	if err != nil {
		log.Error("load mods", "path", root, "err", err)
		return nil, cfg, false
	}
	return st, cfg, true
}

func printMods(st *store.Store) {
	for _, m := range st.Mods() {
		mark := " "
		if m.Enabled {
			mark = "x"
		}
		fmt.Printf("[%s] %s (%s)\n", mark, m.Name, m.Lang)
	}
}

// setAndSave is the shared body of the enable and disable commands.
func setAndSave(names []string, all, enabled bool, modsFlag, cfgPath string) subcommands.ExitStatus {
	if all == (len(names) > 0) {
		log.Error("pass mod names or -all, not both")
		return subcommands.ExitUsageError
	}
	st, cfg, ok := openStore(modsFlag, cfgPath)
	if !ok {
		return subcommands.ExitFailure
	}
	if all {
		st.SetAll(enabled)
	} else {
		for _, name := range names {
			if err := st.Set(name, enabled); err != nil {
				log.Error("set mod", "mod", name, "err", err)
				return subcommands.ExitFailure
			}
		}
	}
	return logReport(st.Save(cfg.modes()))
}

func logReport(rep persist.Report) subcommands.ExitStatus {
	for _, f := range rep.Failures {
		log.Error("save failed", "mod", f.Mod, "path", f.Path, "err", f.Err)
	}
	if !rep.OK() {
		log.Error("save incomplete", "failures", len(rep.Failures))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
