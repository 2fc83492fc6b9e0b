package commands

import (
	"github.com/loilo-inc/spinkit/cli/spinkit/spinapp"
	"github.com/loilo-inc/spinkit/spinner"
	"github.com/loilo-inc/spinkit/types"
)

func ProvideSpinner(app *spinapp.App) types.Spinner {
	timeouts := app.Timeouts()
	return spinner.New(&spinner.Input{
		Out:           app.Stdout,
		In:            app.Stdin,
		Interval:      timeouts.SpinInterval(),
		CursorTimeout: timeouts.CursorQuery(),
		NoColor:       app.NoColor,
	})
}
