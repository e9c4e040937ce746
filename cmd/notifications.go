package cmd

import (
	"fmt"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/format"
	"inteko-cli/lib"
	"inteko-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"no"},
	Short:   "List notifications",
	Args:    cobra.NoArgs,
	Run:     notifications,
}

func init() {
	RootCmd.AddCommand(notificationsCmd)
}

func notifications(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	term.StartSpinner("")
	notifications, apiErr := api.Client.ListNotifications(ctx)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(notifications) == 0 {
		fmt.Println("🤷‍♂️ No new notifications.")
		return
	}

	unread := lib.UnreadCount(notifications)
	color.New(color.Bold, term.ColorHiBlue).Printf("🔔 Notifications (%d unread)\n", unread)
	fmt.Println()

	for i, n := range notifications {
		num := color.New(color.Bold, term.ColorHiCyan).Sprintf("%d.", i+1)
		title := color.New(color.Bold).Sprint(n.Title)
		if !n.IsRead {
			title = color.New(color.Bold, term.ColorHiYellow).Sprint("● " + n.Title)
		}
		fmt.Printf("%s %s · %s\n", num, title, format.Time(n.CreatedAt))
		if n.Message != "" {
			fmt.Println(term.GetPlain(n.Message))
		}
		fmt.Println()
	}

	term.PrintCmds("", "read", "delete")
}
