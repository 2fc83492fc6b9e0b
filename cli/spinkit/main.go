package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/loilo-inc/spinkit/cli/spinkit/commands"
	"github.com/loilo-inc/spinkit/cli/spinkit/spinapp"
	"github.com/loilo-inc/spinkit/cli/spinkit/upgrade"
	"github.com/loilo-inc/spinkit/timeout"
	"github.com/urfave/cli/v2"
)

// set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "spinkit"
	app.HelpName = "spinkit"
	app.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
	app.Usage = "A terminal progress spinner toolkit"
	app.Description = "A terminal progress spinner toolkit"
	sapp := &spinapp.App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	cmds := commands.NewCommands(commands.ProvideSpinner, &timeout.Time{})
	app.Commands = []*cli.Command{
		cmds.Test(sapp),
		cmds.Upgrade(sapp, upgrade.NewUpgrader(), version),
	}
	app.Flags = spinapp.GlobalFlags(sapp)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.RunContext(ctx, os.Args); err != nil {
		sapp.Printer().Failuref("%s", err)
		stop()
		os.Exit(1)
	}
}
