package logger

import (
	"fmt"
	"io"
)

type Printer interface {
	// Successf writes a decorated success line to stdout.
	Successf(format string, args ...any)
	// Failuref writes a decorated failure line to stderr.
	Failuref(format string, args ...any)
}

type printer struct {
	stdout io.Writer
	stderr io.Writer
	color  Color
}

var _ Printer = (*printer)(nil)

func NewPrinter(stdout io.Writer, stderr io.Writer, noColor bool) Printer {
	return &printer{stdout: stdout, stderr: stderr, color: Color{NoColor: noColor}}
}

func (p *printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.stdout, p.color.Success(fmt.Sprintf(format, args...)))
}

func (p *printer) Failuref(format string, args ...any) {
	fmt.Fprintln(p.stderr, p.color.Failure(fmt.Sprintf(format, args...)))
}
