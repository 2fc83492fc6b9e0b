package test

import (
	"sync"

	"github.com/loilo-inc/spinkit/types"
)

type FakeTerminal struct {
	NotTerminal bool
	RawErr      error

	mu       sync.Mutex
	raw      int
	restored int
}

var _ types.Terminal = (*FakeTerminal)(nil)

func (t *FakeTerminal) IsTerminal() bool {
	return !t.NotTerminal
}

func (t *FakeTerminal) MakeRaw() (func() error, error) {
	if t.RawErr != nil {
		return nil, t.RawErr
	}
	t.mu.Lock()
	t.raw++
	t.mu.Unlock()
	return func() error {
		t.mu.Lock()
		t.restored++
		t.mu.Unlock()
		return nil
	}, nil
}

// RawCount returns how many times raw mode was entered and left.
func (t *FakeTerminal) RawCount() (entered int, restored int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw, t.restored
}

// Buffer is a bytes buffer safe for concurrent writers and readers.
type Buffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf)
}
