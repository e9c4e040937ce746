package cmd

import (
	"inteko-cli/auth"
	"inteko-cli/lib"
	"inteko-cli/term"

	"github.com/spf13/cobra"
)

var signUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Create a citizen account",
	Args:  cobra.NoArgs,
	Run:   signUp,
}

func init() {
	RootCmd.AddCommand(signUpCmd)
}

func signUp(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	err := auth.SignUpFlow(ctx)

	if err != nil {
		term.OutputErrorAndExit("Error signing up: %v", err)
	}
}
