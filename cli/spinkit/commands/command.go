package commands

import (
	"github.com/loilo-inc/spinkit/cli/spinkit/spinapp"
	"github.com/loilo-inc/spinkit/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

type Commands struct {
	spinner spinapp.SpinnerProvider
	clock   types.Clock
}

func NewCommands(
	spinner spinapp.SpinnerProvider,
	clock types.Clock,
) *Commands {
	return &Commands{spinner: spinner, clock: clock}
}

func RequireArgs(
	ctx *cli.Context,
	minArgs int,
	maxArgs int,
) (first string, rest []string, err error) {
	if ctx.NArg() < minArgs {
		return "", nil, xerrors.Errorf("invalid number of arguments. expected at least %d", minArgs)
	} else if ctx.NArg() > maxArgs {
		return "", nil, xerrors.Errorf("invalid number of arguments. expected at most %d", maxArgs)
	}
	first = ctx.Args().First()
	rest = ctx.Args().Tail()
	return
}
