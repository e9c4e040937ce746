package auth

import (
	"fmt"

	"inteko-cli/term"
)

// SignOutFlow asks for confirmation, then clears the stored session.
// Credentials are cleared only after the user confirms, never before.
func SignOutFlow() error {
	auth, err := loadAuth()

	if err != nil {
		return fmt.Errorf("error loading auth: %v", err)
	}

	if auth == nil {
		fmt.Println("You aren't signed in on this computer.")
		return nil
	}

	confirmed, err := term.ConfirmYesNo("Are you sure you want to sign out?")

	if err != nil {
		return fmt.Errorf("error getting confirmation: %v", err)
	}

	if !confirmed {
		fmt.Println("Sign out canceled.")
		return nil
	}

	err = ClearAuth()

	if err != nil {
		return fmt.Errorf("error clearing auth: %v", err)
	}

	fmt.Println("✅ Signed out. Stored credentials removed.")

	return nil
}
