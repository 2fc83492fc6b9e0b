package commands_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/loilo-inc/spinkit/cli/spinkit/commands"
	"github.com/loilo-inc/spinkit/cli/spinkit/spinapp"
	"github.com/loilo-inc/spinkit/mocks/mock_types"
	"github.com/loilo-inc/spinkit/test"
	"github.com/loilo-inc/spinkit/types"
	"github.com/urfave/cli/v2"
)

type fixture struct {
	app     *cli.App
	spinapp *spinapp.App
	spinner *mock_types.MockSpinner
	clock   *test.FakeClock
	stdout  *bytes.Buffer
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		spinner: mock_types.NewMockSpinner(ctrl),
		clock:   test.NewFakeClock(),
		stdout:  &bytes.Buffer{},
	}
	f.spinapp = &spinapp.App{Stdout: f.stdout, Stderr: &bytes.Buffer{}}
	cmds := commands.NewCommands(func(app *spinapp.App) types.Spinner {
		return f.spinner
	}, f.clock)
	f.app = cli.NewApp()
	f.app.Commands = []*cli.Command{
		cmds.Test(f.spinapp),
	}
	f.app.Flags = spinapp.GlobalFlags(f.spinapp)
	return f
}
