package timeout

import (
	"time"

	"github.com/loilo-inc/spinkit/env"
)

const DefaultSpinInterval = 80 * time.Millisecond
const CISpinInterval = 10 * time.Second

type Manager interface {
	SpinInterval() time.Duration
	CursorQuery() time.Duration
}

type manager struct {
	env *env.Envars
}

func NewManager(env *env.Envars) Manager {
	return &manager{env: env}
}

// SpinInterval is the redraw period. CI logs are not a terminal, so redraws are rare there.
func (t *manager) SpinInterval() time.Duration {
	wait := t.env.SpinInterval
	if wait > 0 {
		return time.Duration(wait) * time.Millisecond
	}
	if t.env.CI {
		return CISpinInterval
	}
	return DefaultSpinInterval
}

// CursorQuery returns 0 when the cursor query should wait forever.
func (t *manager) CursorQuery() time.Duration {
	wait := t.env.CursorTimeout
	if wait > 0 {
		return time.Duration(wait) * time.Millisecond
	}
	return 0
}
