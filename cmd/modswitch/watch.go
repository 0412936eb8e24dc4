package main

import (
	"context"
	"flag"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/subcommands"

	"github.com/ue4ss-tools/modswitch/store"
)

type WatchCommand struct {
	Mods   string
	Config string
}

func (*WatchCommand) Name() string     { return "watch" }
func (*WatchCommand) Synopsis() string { return "watch the mods directory" }
func (*WatchCommand) Usage() string {
	return `Usage: modswitch watch [-mods dir] [-config path]

	Prints the mod list and reprints it whenever folders appear in or
	disappear from the mods directory. State changes made by other
	tools (or the game) show up on the next change event.

Flags:
`
}

func (cmd *WatchCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *WatchCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig(cmd.Config)
	if !ok {
		return subcommands.ExitFailure
	}
	root, err := findModsDir(cmd.Mods, cfg)
	if err != nil {
		log.Error("locate mods directory", "err", err)
		return subcommands.ExitFailure
	}
	if !relist(root) {
		return subcommands.ExitFailure
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("start watcher", "err", err)
		return subcommands.ExitFailure
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			log.Debug("close watcher", "err", cerr)
		}
	}()
	if err := w.Add(root); err != nil {
		log.Error("watch", "path", root, "err", err)
		return subcommands.ExitFailure
	}
	log.Info("watching mods directory", "path", root)

	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case ev, ok := <-w.Events:
			if !ok {
				return subcommands.ExitSuccess
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("mods directory changed", "op", ev.Op.String(), "path", ev.Name)
			relist(root)
		case err, ok := <-w.Errors:
			if !ok {
				return subcommands.ExitSuccess
			}
			log.Error("watch", "err", err)
		}
	}
}

func relist(root string) bool {
	st, err := store.Load(osfs.New(root), ".")
	if err != nil {
		log.Error("load mods", "path", root, "err", err)
		return false
	}
	printMods(st)
	return true
}
