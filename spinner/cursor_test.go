package spinner_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/loilo-inc/spinkit/spinner"
	"github.com/loilo-inc/spinkit/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestParseCursorPosition(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			want  spinner.Position
		}{
			{name: "basic", input: "\033[12;1R", want: spinner.Position{Row: 12, Col: 1}},
			{name: "large", input: "\033[120;240R", want: spinner.Position{Row: 120, Col: 240}},
			{name: "leading input", input: "ab\033[5;80R", want: spinner.Position{Row: 5, Col: 80}},
			{name: "broken sequence first", input: "\033[x\033[3;4R", want: spinner.Position{Row: 3, Col: 4}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pos, err := spinner.ParseCursorPosition([]byte(tt.input))
				assert.NoError(t, err)
				assert.Equal(t, tt.want, pos)
			})
		}
	})
	t.Run("malformed", func(t *testing.T) {
		inputs := []string{
			"",
			"12;1R",
			"[12;1R",
			"\033[R",
			"\033[12R",
			"\033[12;R",
			"\033[;1R",
			"\033[12;1",
			"\033[1234567;1R",
		}
		for _, input := range inputs {
			pos, err := spinner.ParseCursorPosition([]byte(input))
			assert.Truef(t, xerrors.Is(err, spinner.ErrMalformedReply), "input %q: %v", input, err)
			assert.Equal(t, spinner.Position{}, pos)
		}
	})
}

func TestLocator(t *testing.T) {
	t.Run("reads the reported row", func(t *testing.T) {
		out := &bytes.Buffer{}
		term := &test.FakeTerminal{}
		l := spinner.NewLocator(strings.NewReader("\033[12;1R"), out, term, 0)
		pos, err := l.Locate(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 12, pos.Row)
		assert.Equal(t, "\033[6n", out.String())
		entered, restored := term.RawCount()
		assert.Equal(t, 1, entered)
		assert.Equal(t, 1, restored)
	})
	t.Run("does not consume input after the report", func(t *testing.T) {
		in := strings.NewReader("\033[1;1Rrest")
		l := spinner.NewLocator(in, io.Discard, &test.FakeTerminal{}, 0)
		_, err := l.Locate(context.Background())
		require.NoError(t, err)
		rest, _ := io.ReadAll(in)
		assert.Equal(t, "rest", string(rest))
	})
	t.Run("malformed reply restores raw mode", func(t *testing.T) {
		term := &test.FakeTerminal{}
		l := spinner.NewLocator(strings.NewReader("garbage"), io.Discard, term, 0)
		_, err := l.Locate(context.Background())
		assert.True(t, xerrors.Is(err, spinner.ErrMalformedReply))
		entered, restored := term.RawCount()
		assert.Equal(t, 1, entered)
		assert.Equal(t, 1, restored)
	})
	t.Run("not a terminal", func(t *testing.T) {
		out := &bytes.Buffer{}
		term := &test.FakeTerminal{NotTerminal: true}
		l := spinner.NewLocator(strings.NewReader(""), out, term, 0)
		_, err := l.Locate(context.Background())
		assert.True(t, xerrors.Is(err, spinner.ErrNotTerminal))
		assert.Empty(t, out.String())
		entered, _ := term.RawCount()
		assert.Equal(t, 0, entered)
	})
	t.Run("raw mode error", func(t *testing.T) {
		term := &test.FakeTerminal{RawErr: errors.New("inappropriate ioctl")}
		l := spinner.NewLocator(strings.NewReader(""), io.Discard, term, 0)
		_, err := l.Locate(context.Background())
		assert.EqualError(t, err, "failed to enable raw mode: inappropriate ioctl")
	})
	t.Run("abandoned when context is cancelled", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		term := &test.FakeTerminal{}
		l := spinner.NewLocator(pr, io.Discard, term, 0)
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		_, err := l.Locate(ctx)
		assert.True(t, xerrors.Is(err, context.Canceled))
		entered, restored := term.RawCount()
		assert.Equal(t, 1, entered)
		assert.Equal(t, 1, restored)
	})
	t.Run("abandoned query keeps its own reply", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		l := spinner.NewLocator(pr, io.Discard, &test.FakeTerminal{}, 0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := l.Locate(ctx)
		assert.True(t, xerrors.Is(err, context.Canceled))
		go func() {
			io.WriteString(pw, "\033[7;1R")
			io.WriteString(pw, "\033[8;1R")
		}()
		pos, err := l.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, spinner.Position{Row: 8, Col: 1}, pos)
	})
	t.Run("query timeout", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		l := spinner.NewLocator(pr, io.Discard, &test.FakeTerminal{}, 10*time.Millisecond)
		_, err := l.Locate(context.Background())
		assert.True(t, xerrors.Is(err, context.DeadlineExceeded))
	})
}
