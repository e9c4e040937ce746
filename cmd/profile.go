package cmd

import (
	"fmt"

	"inteko-cli/auth"
	"inteko-cli/lib"
	"inteko-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	Run:   profile,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func profile(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	user := auth.Current.User
	if user == nil {
		term.OutputErrorAndExit("No profile stored. Please sign in again.")
	}

	color.New(color.Bold, term.ColorHiBlue).Println("Profile information")
	fmt.Println()
	fmt.Printf("Name:  %s\n", user.FullName())
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Phone: %s\n", user.Phone)
	if user.Nid != "" {
		fmt.Printf("NID:   %s\n", user.Nid)
	}
	fmt.Println()

	term.PrintCmds("", "change-password", "sign-out")
}
