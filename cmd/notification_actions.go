package cmd

import (
	"fmt"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/lib"
	"inteko-cli/term"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [notification-#]",
	Short: "Mark a notification as read",
	Args:  cobra.MaximumNArgs(1),
	Run:   readNotification,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [notification-#]",
	Short: "Delete a notification",
	Args:  cobra.MaximumNArgs(1),
	Run:   deleteNotification,
}

func init() {
	RootCmd.AddCommand(readCmd)
	RootCmd.AddCommand(deleteCmd)
}

func readNotification(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	notification, all := resolveNotification(ctx, args)
	if notification == nil {
		return
	}

	// already in the terminal state: the action is hidden, not re-sent
	if notification.IsRead {
		fmt.Println("This notification is already read.")
		return
	}

	term.StartSpinner("")
	apiErr := api.Client.MarkNotificationRead(ctx, notification.Id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	lib.MarkNotificationRead(all, notification.Id)

	fmt.Printf("✅ Marked as read: %s\n", notification.Title)
}

func deleteNotification(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	notification, all := resolveNotification(ctx, args)
	if notification == nil {
		return
	}

	term.StartSpinner("")
	apiErr := api.Client.DeleteNotification(ctx, notification.Id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	remaining := lib.RemoveNotification(all, notification.Id)

	fmt.Printf("✅ Deleted: %s\n", notification.Title)
	fmt.Printf("%d notification(s) left.\n", len(remaining))
}
