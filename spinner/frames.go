package spinner

var glyphs = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type frames struct {
	index int
}

func (f *frames) Next() string {
	frame := glyphs[f.index]
	f.index = (f.index + 1) % len(glyphs)
	return frame
}
