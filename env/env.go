package env

import (
	"golang.org/x/xerrors"
)

type Envars struct {
	CI            bool
	NoColor       bool
	SpinInterval  int // msec
	CursorTimeout int // msec
}

const CIKey = "SPINKIT_CI"
const NoColorKey = "SPINKIT_NO_COLOR"
const SpinIntervalKey = "SPINKIT_SPIN_INTERVAL"
const CursorTimeoutKey = "SPINKIT_CURSOR_TIMEOUT"

// conventional names honored as fallbacks
const GenericCIKey = "CI"
const GenericNoColorKey = "NO_COLOR"

func EnsureEnvars(
	dest *Envars,
) error {
	if dest.SpinInterval < 0 {
		return xerrors.Errorf("--spin-interval [%s] must not be negative", SpinIntervalKey)
	}
	if dest.CursorTimeout < 0 {
		return xerrors.Errorf("--cursor-timeout [%s] must not be negative", CursorTimeoutKey)
	}
	return nil
}
