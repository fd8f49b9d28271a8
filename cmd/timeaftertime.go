package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"timeaftertime/internal/control/cli"
)

func main() {
	// logs go to stderr; the tui subcommand redirects them once it owns the
	// terminal
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = false

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "error:\n > %s\n", err.Error())
		os.Exit(1)
	}

	// -v/--version without a subcommand
	if cli.Opts.Version {
		cmd := cli.VersionCommand{}
		if err := cmd.Execute([]string{}); err != nil {
			fmt.Fprintf(os.Stderr, "error:\n > %s\n", err.Error())
			os.Exit(1)
		}
	}
}
