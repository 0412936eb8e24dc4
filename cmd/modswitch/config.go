package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ue4ss-tools/modswitch/internal/robustio"

	"github.com/ue4ss-tools/modswitch/persist"
)

// Config is the optional tool config. Every setting has a default, so a
// missing file is not an error.
type Config struct {
	// Mods overrides mods directory autodetection.
	Mods string `hcl:"mods,optional"`

	Save     *SaveModes `hcl:"save,block"`
	Profiles []Profile  `hcl:"profile,block"`
}

// SaveModes selects which representations saves write. Omitting the
// block writes all three.
type SaveModes struct {
	Markers bool `hcl:"markers,optional"`
	JSON    bool `hcl:"json,optional"`
	Txt     bool `hcl:"txt,optional"`
}

// Profile is a named enabled set that the apply command switches to
// wholesale.
type Profile struct {
	Name   string   `hcl:"name,label"`
	Enable []string `hcl:"enable"`
}

func (c *Config) modes() persist.Options {
	if c.Save == nil {
		return persist.Options{Markers: true, JSON: true, Text: true}
	}
	return persist.Options{
		Markers: c.Save.Markers,
		JSON:    c.Save.JSON,
		Text:    c.Save.Txt,
	}
}

func (c *Config) profile(name string) (Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

func loadConfig(path string) (Config, bool) {
	var c Config
	src, err := robustio.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, true
		}
		log.Error("read config", "path", path, "err", err)
		return c, false
	}

	parser := hclparse.NewParser()
	diagWr, _ := newDiagWr(parser)

	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			log.Error("write diags", "err", err)
		}
		return c, false
	}
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &c)
	diags = append(diags, decodeDiags...)
	if err := diagWr.WriteDiagnostics(diags); err != nil {
		log.Error("write diags", "err", err)
		return c, false
	}
	return c, !diags.HasErrors()
}
