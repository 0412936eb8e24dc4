package main

import (
	"context"
	"flag"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/skratchdot/open-golang/open"
)

type OpenCommand struct {
	Mods   string
	Config string
}

func (*OpenCommand) Name() string     { return "open" }
func (*OpenCommand) Synopsis() string { return "open the mods directory" }
func (*OpenCommand) Usage() string {
	return `Usage: modswitch open [-mods dir] [-config path]

	Opens the mods directory in the OS file manager.

Flags:
`
}

func (cmd *OpenCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *OpenCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, ok := loadConfig(cmd.Config)
	if !ok {
		return subcommands.ExitFailure
	}
	root, err := findModsDir(cmd.Mods, cfg)
	if err != nil {
		log.Error("locate mods directory", "err", err)
		return subcommands.ExitFailure
	}
	if err := open.Run(root); err != nil {
		log.Error("open", "path", root, "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
