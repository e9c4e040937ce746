package cmd

import (
	"context"
	"fmt"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/lib"
	"inteko-cli/term"
	"inteko-cli/types"

	"github.com/spf13/cobra"
)

var commentMessage string

var commentCmd = &cobra.Command{
	Use:   "comment [post-#]",
	Short: "Comment on a post",
	Args:  cobra.MaximumNArgs(1),
	Run:   comment,
}

func init() {
	RootCmd.AddCommand(commentCmd)

	commentCmd.Flags().StringVarP(&commentMessage, "message", "m", "", "comment text")
}

func comment(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	post := resolvePost(ctx, args)
	if post == nil {
		return
	}

	message := commentMessage
	if message == "" {
		var err error
		message, err = term.GetUserStringInput("Add a comment:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting comment: %v", err)
		}
	}

	term.StartSpinner("")
	apiErr, err := createComment(ctx, api.Client, post.Id, message)

	if err != nil {
		term.StopSpinner()
		term.OutputSimpleError("%v", err)
		return
	}

	if apiErr != nil {
		term.StopSpinner()
		term.HandleApiError(apiErr)
	}

	// re-fetch the post so the new comment shows in its confirmed place
	full, apiErr := api.Client.GetPost(ctx, post.Id)
	term.StopSpinner()

	fmt.Println("✅ Comment added successfully!")
	fmt.Println()

	if apiErr != nil {
		// the comment went through; only the refresh failed
		term.OutputSimpleError("couldn't reload comments: %s", apiErr.Msg)
		return
	}

	printPost(full)
}

// createComment rejects an invalid comment locally; no request goes out
// for a comment that fails validation.
func createComment(ctx context.Context, client types.ApiClient, postId int, message string) (*types.ApiError, error) {
	if err := lib.ValidateComment(message); err != nil {
		return nil, err
	}

	return client.CreateComment(ctx, types.CreateCommentRequest{
		Comment: message,
		PostId:  postId,
	}), nil
}
