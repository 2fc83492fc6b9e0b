package spinner

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/loilo-inc/spinkit/types"
	"golang.org/x/xerrors"
)

const (
	esc = 0x1b
	// device status report, cursor position variant
	queryCursorPosition = "\033[6n"
	maxReportLen        = 32
	maxDigits           = 6
)

var ErrMalformedReply = xerrors.New("malformed cursor position report")
var ErrNotTerminal = xerrors.New("not a terminal")

// Position is a 1-based terminal coordinate.
type Position struct {
	Row int
	Col int
}

// ParseCursorPosition extracts the first ESC [ row ; col R report found in b.
// Bytes preceding the report, such as keys typed before the reply, are ignored.
func ParseCursorPosition(b []byte) (Position, error) {
	for i := bytes.IndexByte(b, esc); i >= 0; {
		if pos, ok := parseReport(b[i:]); ok {
			return pos, nil
		}
		next := bytes.IndexByte(b[i+1:], esc)
		if next < 0 {
			break
		}
		i += next + 1
	}
	return Position{}, xerrors.Errorf("%q: %w", b, ErrMalformedReply)
}

func parseReport(b []byte) (Position, bool) {
	if len(b) < 2 || b[0] != esc || b[1] != '[' {
		return Position{}, false
	}
	b = b[2:]
	row, n := parseNumber(b)
	if n == 0 || len(b) == n || b[n] != ';' {
		return Position{}, false
	}
	b = b[n+1:]
	col, n := parseNumber(b)
	if n == 0 || len(b) == n || b[n] != 'R' {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

func parseNumber(b []byte) (v int, n int) {
	for n < len(b) && n < maxDigits && '0' <= b[n] && b[n] <= '9' {
		v = v*10 + int(b[n]-'0')
		n++
	}
	return v, n
}

// Locator asks the terminal for the current cursor position.
type Locator struct {
	in      io.Reader
	out     io.Writer
	term    types.Terminal
	timeout time.Duration

	mu sync.Mutex
	// reading is closed when the most recently started reader returns.
	reading chan struct{}
}

// NewLocator returns a Locator writing queries to out and reading replies from in.
// A zero timeout waits for the reply until ctx is done.
func NewLocator(in io.Reader, out io.Writer, term types.Terminal, timeout time.Duration) *Locator {
	return &Locator{in: in, out: out, term: term, timeout: timeout}
}

type readResult struct {
	report []byte
	err    error
}

// Locate performs one query. Raw mode is held only while waiting for the reply.
// When ctx ends first, the pending read is abandoned and still consumes the
// report answering its query. Readers run one at a time in query order, so a
// later Locate waits for that report to pass before reading its own.
func (l *Locator) Locate(ctx context.Context) (Position, error) {
	if !l.term.IsTerminal() {
		return Position{}, ErrNotTerminal
	}
	restore, err := l.term.MakeRaw()
	if err != nil {
		return Position{}, xerrors.Errorf("failed to enable raw mode: %w", err)
	}
	defer restore()
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	if _, err := io.WriteString(l.out, queryCursorPosition); err != nil {
		return Position{}, xerrors.Errorf("failed to query cursor position: %w", err)
	}
	reply := make(chan readResult, 1)
	l.mu.Lock()
	prev := l.reading
	done := make(chan struct{})
	l.reading = done
	l.mu.Unlock()
	go func() {
		defer close(done)
		if prev != nil {
			<-prev
		}
		report, err := readReport(l.in)
		reply <- readResult{report: report, err: err}
	}()
	select {
	case <-ctx.Done():
		return Position{}, ctx.Err()
	case r := <-reply:
		if r.err != nil {
			return Position{}, xerrors.Errorf("failed to read cursor position: %w", r.err)
		}
		return ParseCursorPosition(r.report)
	}
}

// readReport reads byte by byte so that nothing after the terminating R is consumed.
func readReport(r io.Reader) ([]byte, error) {
	report := make([]byte, 0, maxReportLen)
	b := make([]byte, 1)
	for len(report) < maxReportLen {
		n, err := r.Read(b)
		if n > 0 {
			report = append(report, b[0])
			if b[0] == 'R' {
				return report, nil
			}
		}
		if err == io.EOF {
			return report, nil
		} else if err != nil {
			return report, err
		}
	}
	return report, nil
}
