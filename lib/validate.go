package lib

import (
	"fmt"
	"strings"
)

// Local input checks. A rejected input never issues a network call; the
// message is surfaced directly to the user.

func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("please enter a comment")
	}
	return nil
}

func ValidatePhoneNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("please enter a valid phone number")
	}

	for _, r := range number {
		if r < '0' || r > '9' {
			return fmt.Errorf("phone number must contain digits only")
		}
	}

	if len(number) != 10 {
		return fmt.Errorf("phone number must be 10 digits")
	}

	return nil
}

func ValidateNationalId(nid string) error {
	nid = strings.TrimSpace(nid)
	if len(nid) != 16 {
		return fmt.Errorf("national id must be 16 digits")
	}

	for _, r := range nid {
		if r < '0' || r > '9' {
			return fmt.Errorf("national id must contain digits only")
		}
	}

	return nil
}
