package main

import (
	"context"
	"flag"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
)

type ApplyCommand struct {
	Profile string
	Mods    string
	Config  string
}

func (*ApplyCommand) Name() string     { return "apply" }
func (*ApplyCommand) Synopsis() string { return "apply a config profile" }
func (*ApplyCommand) Usage() string {
	return `Usage: modswitch apply -p profile [-mods dir] [-config path]

	Sets the enabled set to exactly the mods named by a profile block
	in the config and saves. Mods the profile does not name are
	disabled; names the profile lists but the scan did not find are
	skipped with a warning.

Flags:
`
}

func (cmd *ApplyCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.Profile, "p", "", "profile name")
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *ApplyCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if cmd.Profile == "" {
		log.Error("missing -p profile name")
		return subcommands.ExitUsageError
	}
	st, cfg, ok := openStore(cmd.Mods, cmd.Config)
	if !ok {
		return subcommands.ExitFailure
	}
	p, ok := cfg.profile(cmd.Profile)
	if !ok {
		log.Error("no such profile", "profile", cmd.Profile)
		return subcommands.ExitFailure
	}

	st.SetAll(false)
	for _, name := range p.Enable {
		if err := st.Set(name, true); err != nil {
			log.Warn("profile names a missing mod", "mod", name)
		}
	}
	return logReport(st.Save(cfg.modes()))
}
