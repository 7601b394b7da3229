package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/anantk/nivesh/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

// completion describes the CLI for shell completion; install it with
// `COMP_INSTALL=1 nivesh`.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{Sub: sub}
}

func main() {
	completion().Complete("nivesh")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
