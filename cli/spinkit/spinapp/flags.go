package spinapp

import (
	"github.com/loilo-inc/spinkit/env"
	"github.com/urfave/cli/v2"
)

func CIFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "ci",
		EnvVars:     []string{env.CIKey, env.GenericCIKey},
		Usage:       "CI mode. redraw the spinner rarely since the output is not a terminal",
		Destination: dest,
	}
}

func NoColorFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "no-color",
		EnvVars:     []string{env.NoColorKey, env.GenericNoColorKey},
		Usage:       "disable colored output",
		Destination: dest,
	}
}

func SpinIntervalFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "spin-interval",
		EnvVars:     []string{env.SpinIntervalKey},
		Usage:       "redraw interval of the spinner in milliseconds. if not specified, 80ms (10s in CI mode)",
		Destination: dest,
		Category:    "ADVANCED",
	}
}

func CursorTimeoutFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "cursor-timeout",
		EnvVars:     []string{env.CursorTimeoutKey},
		Usage:       "max duration milliseconds for waiting the terminal's cursor position report. 0 waits forever",
		Destination: dest,
		Category:    "ADVANCED",
	}
}

// GlobalFlags binds the app-wide flags to app.
func GlobalFlags(app *App) []cli.Flag {
	return []cli.Flag{
		CIFlag(&app.CI),
		NoColorFlag(&app.NoColor),
		SpinIntervalFlag(&app.SpinInterval),
		CursorTimeoutFlag(&app.CursorTimeout),
	}
}
