package spinner

import (
	"fmt"
	"io"

	"github.com/loilo-inc/spinkit/logger"
)

const clearLine = "\033[2K"

// lineStart moves the cursor to column 0 of row. Row 0 means the row is
// unknown and the current line is used instead.
func lineStart(row int) string {
	if row <= 0 {
		return "\r"
	}
	return fmt.Sprintf("\033[%d;1H", row)
}

type animator struct {
	out    io.Writer
	color  *logger.Color
	frames *frames
	row    int
}

// draw rewrites the owned row with the next glyph and message.
func (a *animator) draw(message string) {
	fmt.Fprintf(a.out, "%s%s%s %s", lineStart(a.row), clearLine, a.color.Cyan(a.frames.Next()), message)
}

func (a *animator) clear() {
	fmt.Fprint(a.out, lineStart(a.row)+clearLine)
}
