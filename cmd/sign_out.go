package cmd

import (
	"inteko-cli/auth"
	"inteko-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:     "sign-out",
	Aliases: []string{"logout"},
	Short:   "Sign out and clear stored credentials",
	Args:    cobra.NoArgs,
	Run:     signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	err := auth.SignOutFlow()

	if err != nil {
		term.OutputErrorAndExit("Error signing out: %v", err)
	}
}
