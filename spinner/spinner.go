package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/loilo-inc/spinkit/logger"
	"github.com/loilo-inc/spinkit/timeout"
	"github.com/loilo-inc/spinkit/types"
)

type State int

const (
	Idle State = iota
	AwaitingCursor
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingCursor:
		return "awaiting-cursor"
	case Animating:
		return "animating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Input struct {
	// Out defaults to os.Stdout.
	Out io.Writer
	// In defaults to os.Stdin.
	In io.Reader
	// Terminal defaults to a terminal over os.Stdin and os.Stdout.
	Terminal types.Terminal
	// Clock defaults to the wall clock.
	Clock types.Clock
	// Interval defaults to timeout.DefaultSpinInterval.
	Interval time.Duration
	// CursorTimeout bounds the cursor query. Zero waits until Stop.
	CursorTimeout time.Duration
	NoColor       bool
}

type Spinner struct {
	out      io.Writer
	clock    types.Clock
	interval time.Duration
	locator  *Locator
	color    *logger.Color
	frames   *frames
	log      *log.Entry

	// op serializes lifecycle operations.
	op sync.Mutex
	// mu guards the fields below, shared with the worker goroutine.
	mu      sync.Mutex
	state   State
	gen     uint64
	message string
	anim    *animator
	cancel  context.CancelFunc
	done    chan struct{}
	expiry  types.Timer
}

var _ types.Spinner = (*Spinner)(nil)

// New returns an idle Spinner. Nothing is written until Start.
func New(input *Input) *Spinner {
	if input == nil {
		input = &Input{}
	}
	out := input.Out
	if out == nil {
		out = os.Stdout
	}
	in := input.In
	if in == nil {
		in = os.Stdin
	}
	term := input.Terminal
	if term == nil {
		term = NewTerminal(os.Stdin, os.Stdout)
	}
	clock := input.Clock
	if clock == nil {
		clock = &timeout.Time{}
	}
	interval := input.Interval
	if interval <= 0 {
		interval = timeout.DefaultSpinInterval
	}
	return &Spinner{
		out:      out,
		clock:    clock,
		interval: interval,
		locator:  NewLocator(in, out, term, input.CursorTimeout),
		color:    &logger.Color{NoColor: input.NoColor},
		frames:   &frames{},
		log:      log.WithField("session", uuid.NewString()),
	}
}

func (s *Spinner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Row returns the row captured by the last cursor query, 0 if unknown.
func (s *Spinner) Row() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.anim == nil {
		return 0
	}
	return s.anim.row
}

// Start cancels any running animation, reserves a new line and begins
// animating message once the cursor row is known. A positive timeout stops
// the spinner automatically after that delay.
func (s *Spinner) Start(message string, timeout time.Duration) {
	s.op.Lock()
	defer s.op.Unlock()
	s.stop()
	fmt.Fprint(s.out, "\n")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = AwaitingCursor
	s.message = message
	s.anim = nil
	s.cancel = cancel
	s.done = done
	if timeout > 0 {
		s.expiry = s.clock.AfterFunc(timeout, func() {
			s.expire(gen)
		})
	}
	s.mu.Unlock()
	s.log.WithField("message", message).Debug("start")
	go s.run(ctx, gen, done)
}

// Stop cancels the animation and blanks its line. It does nothing when idle.
func (s *Spinner) Stop() {
	s.op.Lock()
	defer s.op.Unlock()
	s.stop()
}

func (s *Spinner) Success(message string) {
	s.finish(s.color.Success(message) + "\n")
}

func (s *Spinner) Error(message string) {
	s.finish(s.color.Failure(message) + "\n")
}

// Log stops the spinner and writes message as is.
func (s *Spinner) Log(message string) {
	s.finish(message)
}

func (s *Spinner) finish(text string) {
	s.op.Lock()
	defer s.op.Unlock()
	s.stop()
	fmt.Fprint(s.out, text)
}

func (s *Spinner) expire(gen uint64) {
	s.op.Lock()
	defer s.op.Unlock()
	s.mu.Lock()
	current := s.gen == gen
	s.mu.Unlock()
	if current {
		s.log.Debug("expired")
		s.stop()
	}
}

// stop must be called with op held. It returns after the worker has exited,
// so no redraw can follow the cleared line.
func (s *Spinner) stop() {
	s.mu.Lock()
	state := s.state
	if state == Idle {
		s.mu.Unlock()
		return
	}
	s.gen++
	s.state = Idle
	cancel, done, expiry, anim := s.cancel, s.done, s.expiry, s.anim
	s.cancel, s.done, s.expiry = nil, nil, nil
	s.mu.Unlock()

	if expiry != nil {
		expiry.Stop()
	}
	cancel()
	<-done
	if anim != nil {
		anim.clear()
	} else {
		fmt.Fprint(s.out, lineStart(0)+clearLine)
	}
	s.log.WithField("state", state.String()).Debug("stop")
}

func (s *Spinner) run(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)
	pos, err := s.locator.Locate(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		s.log.WithError(err).Debug("cursor position unavailable")
		pos = Position{}
	}
	ticker := s.animate(gen, pos.Row)
	if ticker == nil {
		return
	}
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.redraw(gen)
		}
	}
}

// animate moves the session to Animating and draws the first frame.
func (s *Spinner) animate(gen uint64, row int) types.Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.state = Animating
	s.anim = &animator{out: s.out, color: s.color, frames: s.frames, row: row}
	s.anim.draw(s.message)
	return s.clock.NewTicker(s.interval)
}

func (s *Spinner) redraw(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.anim.draw(s.message)
}
