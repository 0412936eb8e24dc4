package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/pkg/diff"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/ue4ss-tools/modswitch/internal/renameio"
	"github.com/ue4ss-tools/modswitch/internal/robustio"
)

type FormatCommand struct {
	DisableCheck bool
	Overwrite    bool
	ContextSize  int
}

func (*FormatCommand) Name() string     { return "fmt" }
func (*FormatCommand) Synopsis() string { return "format config files" }
func (*FormatCommand) Usage() string {
	return `Usage: modswitch fmt [-c int] [-w] [-nocheck] [config paths]

	Formats tool configs using standard HCL syntax. It either writes
	files in place or prints a unified diff with the given context
	size.

Flags:
`
}

func (cmd *FormatCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.DisableCheck, "nocheck", false, "disable diagnostics")
	fs.BoolVar(&cmd.Overwrite, "w", false, "write result to (source) file instead of stdout")
	fs.IntVar(&cmd.ContextSize, "c", 3, "output n lines of diff context")
}

func (cmd *FormatCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	var color bool
	var parser *hclparse.Parser
	var diagWr hcl.DiagnosticWriter
	if !cmd.DisableCheck {
		parser = hclparse.NewParser()
		diagWr, color = newDiagWr(parser)
	}

	paths := fs.Args()
	if len(paths) <= 0 {
		paths = []string{defaultConfig}
	} else {
		sort.Strings(paths)
	}

	seen := make(map[string]bool, len(paths))
	for _, fpath := range paths {
		if seen[fpath] {
			continue
		}
		seen[fpath] = true
		src, err := robustio.ReadFile(fpath)
		if err != nil {
			log.Error("read config", "path", fpath, "err", err)
			return subcommands.ExitFailure
		}

		if !cmd.DisableCheck {
			file, diags := parser.ParseHCL(src, fpath)
			if diags.HasErrors() {
				if err := diagWr.WriteDiagnostics(diags); err != nil {
					log.Error("write diags", "err", err)
				}
				return subcommands.ExitFailure
			}
			decodeDiags := gohcl.DecodeBody(file.Body, nil, &Config{})
			diags = append(diags, decodeDiags...)
			if err := diagWr.WriteDiagnostics(diags); err != nil {
				log.Error("write diags", "err", err)
				return subcommands.ExitFailure
			}
			if diags.HasErrors() {
				return subcommands.ExitFailure
			}
		}

		outSrc := hclwrite.Format(src)
		if bytes.Equal(src, outSrc) {
			continue
		}
		if !cmd.Overwrite {
			fpath := filepath.ToSlash(fpath)
			aname := fmt.Sprintf("a/%s", fpath)
			bname := fmt.Sprintf("b/%s", fpath)
			opts := []diff.WriteOpt{diff.Names(aname, bname)}
			if color {
				opts = append(opts, diff.TerminalColor())
			}
			a, b := splitLines(src), splitLines(outSrc)
			pair := diff.Bytes(a, b)
			edit := diff.Myers(ctx, pair)
			if cmd.ContextSize >= 0 {
				edit = edit.WithContextSize(cmd.ContextSize)
			}
			if _, err := edit.WriteUnified(os.Stdout, pair, opts...); err != nil {
				log.Error("write diff", "err", err)
				return subcommands.ExitFailure
			}
			continue
		}
		if err := renameio.WriteFile(fpath, outSrc, 0644); err != nil {
			log.Error("write config", "path", fpath, "err", err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func splitLines(b []byte) [][]byte {
	return bytes.Split(b, []byte("\n"))
}
