package auth

import (
	"context"
	"fmt"

	"inteko-cli/term"
)

const (
	authSignInOption = "Sign in to an existing account"
	authSignUpOption = "Create a new citizen account"
)

// MustResolveAuth loads the stored session, prompting for sign in or sign
// up when none exists. A missing auth.json is "not authenticated", never
// an error; a corrupt one is.
func MustResolveAuth(ctx context.Context) {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	auth, err := loadAuth()

	if err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}

	if auth == nil {
		err = promptInitialAuth(ctx)

		if err != nil {
			term.OutputErrorAndExit("error resolving auth: %v", err)
		}

		return
	}

	Current = auth
}

func promptInitialAuth(ctx context.Context) error {
	selected, err := term.SelectFromList("👋 Hey there!\nYou aren't signed in on this computer.\nWhat would you like to do?", []string{authSignInOption, authSignUpOption})

	if err != nil {
		return fmt.Errorf("error selecting auth option: %v", err)
	}

	switch selected {
	case authSignInOption:
		err = SignInFlow(ctx)

		if err != nil {
			return fmt.Errorf("error signing in: %v", err)
		}

	case authSignUpOption:
		err = SignUpFlow(ctx)

		if err != nil {
			return fmt.Errorf("error signing up: %v", err)
		}
	}

	return nil
}
