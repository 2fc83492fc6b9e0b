package spinner

import (
	"os"

	"github.com/loilo-inc/spinkit/types"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type fdTerminal struct {
	in  *os.File
	out *os.File
}

// NewTerminal returns a Terminal backed by the given file descriptors, typically os.Stdin and os.Stdout.
func NewTerminal(in *os.File, out *os.File) types.Terminal {
	return &fdTerminal{in: in, out: out}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *fdTerminal) IsTerminal() bool {
	return isTerminal(t.in) && isTerminal(t.out)
}

func (t *fdTerminal) MakeRaw() (func() error, error) {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
