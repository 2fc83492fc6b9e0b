package types

import (
	"time"
)

type Clock interface {
	NewTicker(d time.Duration) Ticker
	AfterFunc(d time.Duration, f func()) Timer
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type Timer interface {
	Stop() bool
}

// Terminal is the input side of an interactive terminal.
type Terminal interface {
	// IsTerminal reports whether both input and output are attached to a tty.
	IsTerminal() bool
	// MakeRaw puts the input into raw mode and returns a function restoring the previous state.
	MakeRaw() (restore func() error, err error)
}

type Spinner interface {
	Start(message string, timeout time.Duration)
	Stop()
	Success(message string)
	Error(message string)
	Log(message string)
}

type Upgrader interface {
	Upgrade(input *UpgradeInput) error
}

type UpgradeInput struct {
	CurrentVersion string
	PreRelease     bool
	TargetPath     string
}
