package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

// The bright variants wash out on light backgrounds, so the palette drops
// to the plain ANSI colors there. Usage across the screens: green for
// confirmed states (attended, paid), red for alerts and unpaid fines,
// yellow for missed meetings and unread markers, cyan for row numbers and
// command hints, blue for headers, magenta for prompts.
var (
	ColorHiGreen   = pickColor(color.FgHiGreen, color.FgGreen)
	ColorHiMagenta = pickColor(color.FgHiMagenta, color.FgMagenta)
	ColorHiRed     = pickColor(color.FgHiRed, color.FgRed)
	ColorHiYellow  = pickColor(color.FgHiYellow, color.FgYellow)
	ColorHiCyan    = pickColor(color.FgHiCyan, color.FgCyan)
	ColorHiBlue    = pickColor(color.FgHiBlue, color.FgBlue)
)

func pickColor(dark, light color.Attribute) color.Attribute {
	if IsDarkBg {
		return dark
	}
	return light
}
