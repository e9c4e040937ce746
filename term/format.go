package term

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// GetPlain wraps long body text (post descriptions, notification
// messages) to the terminal width with a little padding.
func GetPlain(input string) string {
	width := getTerminalWidth()

	s := wordwrap.String(input, min(width-2, 80))

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	s = strings.Join(lines, "\n")

	c := "234"
	if termenv.HasDarkBackground() {
		c = "251"
	}

	return termenv.String(s).Foreground(termenv.ANSI256.Color(c)).String()
}
