// Package spinner draws an animated progress line on an interactive terminal.
//
// A Spinner is created idle by New and begins work on Start. Start reserves a
// fresh line, asks the terminal where the cursor is, then redraws that row on
// a fixed interval until Stop, Success, Error or Log is called. None of the
// lifecycle methods report errors: a terminal that cannot answer the cursor
// query simply gets no animation, or an animation on the current line.
//
// The captured row is not re-queried while animating, so resizing the
// terminal window mid-animation can draw over the wrong line.
package spinner
