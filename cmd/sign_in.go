package cmd

import (
	"inteko-cli/auth"
	"inteko-cli/lib"
	"inteko-cli/term"

	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to an Inteko account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)
}

func signIn(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	err := auth.SignInFlow(ctx)

	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}
}
