package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ue4ss-tools/modswitch/persist"
)

type SaveCommand struct {
	Markers bool
	JSON    bool
	Txt     bool
	Mods    string
	Config  string
}

func (*SaveCommand) Name() string     { return "save" }
func (*SaveCommand) Synopsis() string { return "rewrite the persisted mod state" }
func (*SaveCommand) Usage() string {
	return `Usage: modswitch save [-markers=false] [-json=false] [-txt=false] [-mods dir] [-config path]

	Loads the current state and rewrites the selected representations
	from it. Useful when enabled.txt markers, mods.json and mods.txt
	have drifted apart: the load precedence (marker, then json, then
	txt) decides the state that all of them are rewritten to.

Flags:
`
}

func (cmd *SaveCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.Markers, "markers", true, "write per-mod enabled.txt markers")
	fs.BoolVar(&cmd.JSON, "json", true, "write the mods.json aggregate")
	fs.BoolVar(&cmd.Txt, "txt", true, "write the mods.txt aggregate")
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *SaveCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	st, _, ok := openStore(cmd.Mods, cmd.Config)
	if !ok {
		return subcommands.ExitFailure
	}
	return logReport(st.Save(persist.Options{
		Markers: cmd.Markers,
		JSON:    cmd.JSON,
		Text:    cmd.Txt,
	}))
}
