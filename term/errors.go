package term

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"inteko-cli/types"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)

	displayMsg := ""
	errorParts := strings.Split(msg, ": ")

	if len(errorParts) > 1 {
		for i, part := range errorParts {
			if i == 0 {
				displayMsg += color.New(ColorHiRed, color.Bold).Sprint("🚨 " + Capitalize(part))
				continue
			}

			displayMsg += "\n"
			for n := 0; n < i; n++ {
				displayMsg += "  "
			}
			displayMsg += "→ " + Capitalize(part)
		}
	} else {
		displayMsg = color.New(ColorHiRed, color.Bold).Sprint("🚨 " + msg)
	}

	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint(displayMsg))
	os.Exit(1)
}

// HandleApiError converts a resource client failure into a user-facing
// alert and exits. An unauthorized failure means the session ended
// server-side, so the stored session is worthless and the user is told to
// sign in again.
func HandleApiError(apiError *types.ApiError) {
	StopSpinner()

	if apiError.Type == types.ApiErrorTypeUnauthorized {
		OutputErrorAndExit("Your session has ended. Please run 'inteko sign-in' to sign in again.")
	}

	OutputErrorAndExit(apiError.Msg)
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
