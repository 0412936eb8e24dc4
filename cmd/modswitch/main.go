package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	programName   = "modswitch"
	defaultConfig = "modswitch.conf"
	logFileName   = "modswitch.log"
)

func main() {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Bool("h", false, "alias for help")
	fs.Bool("help", false, "print usage")

	cdr := subcommands.NewCommander(fs, programName)
	cdr.Register(&ListCommand{}, "")
	cdr.Register(&EnableCommand{}, "")
	cdr.Register(&DisableCommand{}, "")
	cdr.Register(&SaveCommand{}, "")
	cdr.Register(&ApplyCommand{}, "")
	cdr.Register(&SnapshotCommand{}, "")
	cdr.Register(&FormatCommand{}, "")
	cdr.Register(&WatchCommand{}, "")
	cdr.Register(&OpenCommand{}, "")
	cdr.Register(cdr.HelpCommand(), "help")
	cdr.Register(cdr.FlagsCommand(), "help")
	cdr.Register(cdr.CommandsCommand(), "help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	setupLogger(*verbose)

	ctx := context.Background()
	switch cdr.Execute(ctx) {
	case subcommands.ExitFailure:
		os.Exit(1)
	case subcommands.ExitUsageError:
		os.Exit(2)
	}
}

// setupLogger mirrors everything to a small rotating file so mod load
// problems can be diagnosed after the fact.
func setupLogger(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	rot := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    1, // megabytes
		MaxAge:     7, // days
		MaxBackups: 3,
	}
	log.SetDefault(log.NewWithOptions(io.MultiWriter(os.Stderr, rot), log.Options{
		ReportTimestamp: true,
		Level:           level,
	}))
}
