package spinapp

import (
	"github.com/loilo-inc/spinkit/types"
)

type SpinnerProvider = func(app *App) types.Spinner

type TestCmdInput struct {
	App      *App
	Message  string
	Duration int // msec
	Timeout  int // msec
	Fail     bool
	Log      bool
}

const DefaultTestMessage = "Testing..."
