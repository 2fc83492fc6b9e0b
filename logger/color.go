package logger

import (
	"fmt"
)

type Color struct {
	NoColor bool
}

func (c *Color) sprintf(prefix, s, suffix string, args ...any) string {
	if c.NoColor {
		return fmt.Sprintf(s, args...)
	}
	return prefix + fmt.Sprintf(s, args...) + suffix
}

func (c *Color) Red(s string) string {
	return c.Redf("%s", s)
}
func (c *Color) Redf(s string, args ...any) string {
	return c.sprintf("\033[31m", s, "\033[0m", args...)
}

func (c *Color) Green(s string) string {
	return c.Greenf("%s", s)
}
func (c *Color) Greenf(s string, args ...any) string {
	return c.sprintf("\033[32m", s, "\033[0m", args...)
}

func (c *Color) Cyan(s string) string {
	return c.Cyanf("%s", s)
}
func (c *Color) Cyanf(s string, args ...any) string {
	return c.sprintf("\033[36m", s, "\033[0m", args...)
}

const successMark = "✔"
const failureMark = "✖"

// Success prefixes s with a green check mark.
func (c *Color) Success(s string) string {
	return c.Green(successMark) + " " + s
}

// Failure prefixes s with a red cross.
func (c *Color) Failure(s string) string {
	return c.Red(failureMark) + " " + s
}
