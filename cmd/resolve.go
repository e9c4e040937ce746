package cmd

import (
	"context"
	"fmt"
	"strconv"

	"inteko-cli/api"
	"inteko-cli/format"
	"inteko-cli/lib"
	"inteko-cli/term"
	"inteko-cli/types"
)

// Commands take the row number shown by the matching list command, or no
// argument to pick from a prompt.

func resolvePost(ctx context.Context, args []string) *types.Post {
	term.StartSpinner("")
	posts, apiErr := api.Client.ListCitizenPosts(ctx)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(posts) == 0 {
		fmt.Println("🤷‍♂️ No posts available at the moment.")
		return nil
	}

	if len(args) > 0 {
		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 1 || idx > len(posts) {
			term.OutputErrorAndExit("Post number must be between 1 and %d", len(posts))
		}
		return posts[idx-1]
	}

	names := make([]string, len(posts))
	for i, p := range posts {
		names[i] = lib.PostLabel(p)
	}

	selected, err := term.SelectNamed("Select a post:", names)
	if err != nil {
		term.OutputErrorAndExit("Error selecting post: %v", err)
	}

	return posts[selected]
}

func resolvePenalty(ctx context.Context, args []string, unpaidOnly bool) (*types.Penalty, []*types.Penalty) {
	term.StartSpinner("")
	penalties, apiErr := api.Client.ListMyPenalties(ctx)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(penalties) == 0 {
		fmt.Println("🤷‍♂️ No fines found.")
		return nil, nil
	}

	if len(args) > 0 {
		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 1 || idx > len(penalties) {
			term.OutputErrorAndExit("Fine number must be between 1 and %d", len(penalties))
		}
		return penalties[idx-1], penalties
	}

	candidates := penalties
	if unpaidOnly {
		candidates = lib.UnpaidPenalties(penalties)
	}

	if len(candidates) == 0 {
		fmt.Println("🤷‍♂️ No fines found.")
		return nil, nil
	}

	names := make([]string, len(candidates))
	for i, p := range candidates {
		label := format.Amount(p.Penarity)
		if p.Post != nil {
			label = fmt.Sprintf("%s · %s", format.Amount(p.Penarity), p.Post.Title)
		}
		names[i] = label
	}

	selected, err := term.SelectNamed("Select a fine:", names)
	if err != nil {
		term.OutputErrorAndExit("Error selecting fine: %v", err)
	}

	return candidates[selected], penalties
}

func resolveNotification(ctx context.Context, args []string) (*types.Notification, []*types.Notification) {
	term.StartSpinner("")
	notifications, apiErr := api.Client.ListNotifications(ctx)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(notifications) == 0 {
		fmt.Println("🤷‍♂️ No new notifications.")
		return nil, nil
	}

	if len(args) > 0 {
		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 1 || idx > len(notifications) {
			term.OutputErrorAndExit("Notification number must be between 1 and %d", len(notifications))
		}
		return notifications[idx-1], notifications
	}

	names := make([]string, len(notifications))
	for i, n := range notifications {
		names[i] = n.Title
	}

	selected, err := term.SelectNamed("Select a notification:", names)
	if err != nil {
		term.OutputErrorAndExit("Error selecting notification: %v", err)
	}

	return notifications[selected], notifications
}
