package auth

import (
	"context"
	"fmt"

	"inteko-cli/term"
	"inteko-cli/types"

	"github.com/fatih/color"
)

// SignInFlow prompts for credentials and authenticates. While the request
// is in flight the state is "authenticating": nothing is persisted until
// the server accepts, and a failure leaves the installation signed out
// with no partial token stored.
func SignInFlow(ctx context.Context) error {
	email, err := term.GetRequiredUserStringInput("Your email:")

	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Your password:")

	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := apiClient.SignIn(ctx, types.SignInRequest{
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing in: %v", apiErr.Msg)
	}

	if res.Token == "" || res.User == nil {
		return fmt.Errorf("error signing in: server response is missing the token or profile")
	}

	err = setAuth(&types.ClientAuth{
		Token: res.Token,
		User:  res.User,
	})

	if err != nil {
		return fmt.Errorf("error setting auth: %v", err)
	}

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprintf("<%s> %s", res.User.FullName(), res.User.Email))
	fmt.Println()
	term.PrintCmds("", "posts", "penalties", "notifications")

	return nil
}
