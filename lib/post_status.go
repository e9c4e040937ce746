package lib

import (
	"fmt"

	"inteko-cli/format"
	"inteko-cli/term"
	"inteko-cli/types"

	"github.com/fatih/color"
)

// PostStatusLine derives the one-line attendance status shown under each
// post: attended, fined (paid or not), or just missed.
func PostStatusLine(post *types.Post) string {
	if len(post.Attendances) > 0 {
		return color.New(term.ColorHiGreen).Sprint("You attended this meeting.")
	}

	if len(post.Penalties) > 0 {
		penalty := post.Penalties[0]
		if penalty.IsPaid() {
			return color.New(term.ColorHiGreen).Sprintf("Penalty %s paid successfully!", format.Amount(penalty.Penarity))
		}
		return color.New(term.ColorHiRed).Sprintf("Penalty: %s (not yet paid)", format.Amount(penalty.Penarity))
	}

	return color.New(term.ColorHiYellow).Sprint("You did not attend this meeting!")
}

// PenaltyStatusLine colors the status column in the fines list.
func PenaltyStatusLine(penalty *types.Penalty) string {
	if penalty.IsPaid() {
		return color.New(term.ColorHiGreen).Sprint(penalty.Status)
	}
	return color.New(term.ColorHiYellow).Sprint(penalty.Status)
}

// PostLabel names a post in prompts and tables.
func PostLabel(post *types.Post) string {
	return fmt.Sprintf("%s (%s)", post.Title, format.Date(post.CreatedAt))
}
