package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/ue4ss-tools/modswitch/internal/renameio"
	"github.com/ue4ss-tools/modswitch/internal/robustio"
)

type SnapshotCommand struct {
	OutputPath  string
	ProfileName string
	Mods        string
	Config      string
}

func (*SnapshotCommand) Name() string     { return "snapshot" }
func (*SnapshotCommand) Synopsis() string { return "record the enabled set as a profile" }
func (*SnapshotCommand) Usage() string {
	return `Usage: modswitch snapshot [-name NAME] [-o modswitch.conf] [-mods dir] [-config path]

	Appends the currently enabled mods as a profile block to the -o
	file, so the set can later be restored with apply. By default
	that is the config itself; pass a different -o to collect
	profiles in a separate file while -config still supplies the
	settings (such as the mods directory).

Flags:
`
}

func (cmd *SnapshotCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.ProfileName, "name", "snapshot", "profile name")
	fs.StringVar(&cmd.OutputPath, "o", defaultConfig, "output config path")
	fs.StringVar(&cmd.Mods, "mods", "", "mods directory (default: autodetect)")
	fs.StringVar(&cmd.Config, "config", defaultConfig, "tool config path")
}

func (cmd *SnapshotCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	st, _, ok := openStore(cmd.Mods, cmd.Config)
	if !ok {
		return subcommands.ExitFailure
	}

	fpath := cmd.OutputPath
	var file *hclwrite.File
	src, err := robustio.ReadFile(fpath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		file = hclwrite.NewEmptyFile()
	case err != nil:
		log.Error("read config", "path", fpath, "err", err)
		return subcommands.ExitFailure
	default:
		var diags hcl.Diagnostics
		file, diags = hclwrite.ParseConfig(src, fpath, hcl.InitialPos)
		if diags.HasErrors() {
			log.Error("parse config", "path", fpath, "err", diags)
			return subcommands.ExitFailure
		}
	}

	pb := profileBuilder{Body: file.Body(), Empty: len(src) == 0}
	pb.Add(cmd.ProfileName, st.Enabled())

	if err := renameio.WriteFile(fpath, file.Bytes(), 0644); err != nil {
		log.Error("write config", "path", fpath, "err", err)
		return subcommands.ExitFailure
	}
	log.Info("profile recorded", "profile", cmd.ProfileName, "path", fpath)
	return subcommands.ExitSuccess
}

type profileBuilder struct {
	*hclwrite.Body
	Empty bool
}

func (b *profileBuilder) Add(name string, enabled []string) {
	if !b.Empty {
		b.AppendNewline()
	}

	block := b.AppendNewBlock("profile", []string{name})
	body := block.Body()

	list := cty.ListValEmpty(cty.String)
	if len(enabled) > 0 {
		vals := make([]cty.Value, len(enabled))
		for i, n := range enabled {
			vals[i] = cty.StringVal(n)
		}
		list = cty.ListVal(vals)
	}
	body.SetAttributeValue("enable", list)
}
