package commands

import (
	"github.com/loilo-inc/spinkit/cli/spinkit/spinapp"
	"github.com/loilo-inc/spinkit/types"
	"github.com/urfave/cli/v2"
)

func (c *Commands) Upgrade(
	app *spinapp.App,
	u types.Upgrader,
	currVersion string,
) *cli.Command {
	var preRelease bool
	return &cli.Command{
		Name:  "upgrade",
		Usage: "upgrade spinkit binary with the latest version",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "pre-release",
				Usage:       "include pre-release versions",
				Destination: &preRelease,
			},
		},
		Action: func(ctx *cli.Context) error {
			if err := u.Upgrade(&types.UpgradeInput{
				CurrentVersion: currVersion,
				PreRelease:     preRelease,
			}); err != nil {
				return err
			}
			app.Printer().Successf("spinkit is up to date")
			return nil
		},
	}
}
