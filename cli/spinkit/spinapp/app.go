package spinapp

import (
	"io"

	"github.com/loilo-inc/spinkit/env"
	"github.com/loilo-inc/spinkit/logger"
	"github.com/loilo-inc/spinkit/timeout"
)

type App struct {
	env.Envars
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Output replaces the printer built from Stdout and Stderr.
	Output logger.Printer
}

func (a *App) Timeouts() timeout.Manager {
	return timeout.NewManager(&a.Envars)
}

func (a *App) Printer() logger.Printer {
	if a.Output != nil {
		return a.Output
	}
	return logger.NewPrinter(a.Stdout, a.Stderr, a.NoColor)
}
