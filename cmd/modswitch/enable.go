package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type EnableCommand struct {
	All    bool
	Mods   string
	Config string
}

func (*EnableCommand) Name() string     { return "enable" }
func (*EnableCommand) Synopsis() string { return "enable mods and save" }
func (*EnableCommand) Usage() string {
	return `Usage: modswitch enable [-all] [-mods dir] [-config path] [mod names]

	Enables the named mods (or every discovered mod with -all) and
	saves through the representations selected in the config.

Flags:
`
}

func (cmd *EnableCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.All, "all", false, "enable every discovered mod")
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *EnableCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return setAndSave(fs.Args(), cmd.All, true, cmd.Mods, cmd.Config)
}
