package commands

import (
	"time"

	"github.com/apex/log"
	"github.com/loilo-inc/spinkit/cli/spinkit/spinapp"
	"github.com/loilo-inc/spinkit/env"
	"github.com/urfave/cli/v2"
)

func (c *Commands) Test(app *spinapp.App) *cli.Command {
	input := &spinapp.TestCmdInput{App: app}
	return &cli.Command{
		Name:        "test",
		Usage:       "show a spinner for a while and finish it",
		Description: "runs the spinner through its whole lifecycle to check how it renders on this terminal",
		ArgsUsage:   "[message]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "duration",
				Usage:       "milliseconds to animate before finishing",
				Destination: &input.Duration,
				Value:       2000,
			},
			&cli.IntFlag{
				Name:        "timeout",
				Usage:       "milliseconds after which the spinner stops by itself. 0 disables",
				Destination: &input.Timeout,
			},
			&cli.BoolFlag{
				Name:        "fail",
				Usage:       "finish with an error message",
				Destination: &input.Fail,
			},
			&cli.BoolFlag{
				Name:        "log",
				Usage:       "finish with an undecorated message",
				Destination: &input.Log,
			},
		},
		Action: func(ctx *cli.Context) error {
			message, _, err := RequireArgs(ctx, 0, 1)
			if err != nil {
				return err
			}
			if err := env.EnsureEnvars(&app.Envars); err != nil {
				return err
			}
			if message == "" {
				message = spinapp.DefaultTestMessage
			}
			input.Message = message
			return c.runTest(ctx, input)
		},
	}
}

func (c *Commands) runTest(ctx *cli.Context, input *spinapp.TestCmdInput) error {
	s := c.spinner(input.App)
	s.Start(input.Message, time.Duration(input.Timeout)*time.Millisecond)
	if input.Duration > 0 {
		elapsed := make(chan struct{})
		timer := c.clock.AfterFunc(time.Duration(input.Duration)*time.Millisecond, func() {
			close(elapsed)
		})
		select {
		case <-elapsed:
		case <-ctx.Context.Done():
			timer.Stop()
			s.Error("interrupted")
			return ctx.Context.Err()
		}
	}
	log.WithField("duration", input.Duration).Debug("test finished")
	switch {
	case input.Fail:
		s.Error(input.Message)
	case input.Log:
		s.Log(input.Message + "\n")
	default:
		s.Success(input.Message)
	}
	return nil
}
