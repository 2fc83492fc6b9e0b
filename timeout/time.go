package timeout

import (
	"time"

	"github.com/loilo-inc/spinkit/types"
)

type Time struct{}

var _ types.Clock = (*Time)(nil)

func (t *Time) NewTicker(d time.Duration) types.Ticker {
	return &ticker{t: time.NewTicker(d)}
}

func (t *Time) AfterFunc(d time.Duration, f func()) types.Timer {
	return time.AfterFunc(d, f)
}

type ticker struct {
	t *time.Ticker
}

func (t *ticker) C() <-chan time.Time {
	return t.t.C
}

func (t *ticker) Stop() {
	t.t.Stop()
}
