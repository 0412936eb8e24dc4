package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type DisableCommand struct {
	All    bool
	Mods   string
	Config string
}

func (*DisableCommand) Name() string     { return "disable" }
func (*DisableCommand) Synopsis() string { return "disable mods and save" }
func (*DisableCommand) Usage() string {
	return `Usage: modswitch disable [-all] [-mods dir] [-config path] [mod names]

	Disables the named mods (or every discovered mod with -all) and
	saves through the representations selected in the config.

Flags:
`
}

func (cmd *DisableCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.All, "all", false, "disable every discovered mod")
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *DisableCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return setAndSave(fs.Args(), cmd.All, false, cmd.Mods, cmd.Config)
}
