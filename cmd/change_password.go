package cmd

import (
	"fmt"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/lib"
	"inteko-cli/term"
	"inteko-cli/types"

	"github.com/spf13/cobra"
)

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change your password",
	Args:  cobra.NoArgs,
	Run:   changePassword,
}

func init() {
	RootCmd.AddCommand(changePasswordCmd)
}

func changePassword(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	oldPassword, err := term.GetUserPasswordInput("Old password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	newPassword, err := term.GetUserPasswordInput("New password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	confirmPassword, err := term.GetUserPasswordInput("Confirm new password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	// checked locally; no request goes out on a mismatch
	if newPassword != confirmPassword {
		term.OutputSimpleError("passwords do not match")
		return
	}

	term.StartSpinner("")
	message, apiErr := api.Client.ChangePassword(ctx, types.ChangePasswordRequest{
		OldPassword:     oldPassword,
		NewPassword:     newPassword,
		ConfirmPassword: confirmPassword,
	})
	term.StopSpinner()

	// a failed password change leaves the session as it was
	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if message == "" {
		message = "Password changed."
	}
	fmt.Println("✅ " + term.Capitalize(message))
}
