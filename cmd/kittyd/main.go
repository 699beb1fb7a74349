package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kittyverse/weft"
	kittyd "github.com/kittyverse/weft/cmd/kittyd/app"
	"github.com/kittyverse/weft/commands/server"
	"github.com/kittyverse/weft/errors"
	"github.com/tendermint/tendermint/libs/log"
)

type command struct {
	name  string
	about string
	run   func(logger log.Logger, home string, args []string) error
}

var commands = []command{
	{"init", "write the kitties app_state into the tendermint genesis file", func(l log.Logger, home string, args []string) error {
		return server.InitCmd(kittyd.GenInitOptions, l, home, args)
	}},
	{"validate", "load genesis files into an empty state", func(_ log.Logger, _ string, args []string) error {
		return server.ValidateGenesis(kittyd.Initializers(), args)
	}},
	{"start", "serve the abci application", func(l log.Logger, home string, args []string) error {
		return server.StartCmd(kittyd.GenerateApp, l, home, args)
	}},
	{"journal", "print committed events as json lines", func(l log.Logger, home string, args []string) error {
		return server.JournalCmd(l, home, args, os.Stdout)
	}},
	{"version", "print the version", func(log.Logger, string, []string) error {
		fmt.Println(weft.FullVersion())
		return nil
	}},
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: kittyd [-home dir] <command> [args]\n\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.about)
	}
	fmt.Fprintln(w)
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

func main() {
	home := flag.String("home", filepath.Join(os.ExpandEnv("$HOME"), ".kittyd"), "node directory")
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "help" {
		usage(os.Stdout)
		return
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "kitty")
	if err := run(logger, *home, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "kittyd: %+v\n", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, home, name string, args []string) error {
	for _, c := range commands {
		if c.name == name {
			return c.run(logger, home, args)
		}
	}
	usage(os.Stderr)
	return errors.Wrapf(errors.ErrInput, "unknown command %q", name)
}
