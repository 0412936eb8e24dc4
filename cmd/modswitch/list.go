package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type ListCommand struct {
	Mods   string
	Config string
}

func (*ListCommand) Name() string     { return "list" }
func (*ListCommand) Synopsis() string { return "list mods with enabled state" }
func (*ListCommand) Usage() string {
	return `Usage: modswitch list [-mods dir] [-config path]

	Lists the discovered mods, one per line, with an [x] marker for
	enabled ones and the mod kind (lua or cpp).

Flags:
`
}

func (cmd *ListCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *ListCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	st, _, ok := openStore(cmd.Mods, cmd.Config)
	if !ok {
		return subcommands.ExitFailure
	}
	printMods(st)
	return subcommands.ExitSuccess
}
