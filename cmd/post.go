package cmd

import (
	"fmt"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/format"
	"inteko-cli/lib"
	"inteko-cli/term"
	"inteko-cli/types"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post [#]",
	Short: "Show one post with its comments",
	Args:  cobra.MaximumNArgs(1),
	Run:   post,
}

func init() {
	RootCmd.AddCommand(postCmd)
}

func post(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	selected := resolvePost(ctx, args)
	if selected == nil {
		return
	}

	// re-fetch the single post so comments are current
	term.StartSpinner("")
	full, apiErr := api.Client.GetPost(ctx, selected.Id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	printPost(full)
}

func printPost(post *types.Post) {
	color.New(color.Bold, term.ColorHiBlue).Println(post.Title)
	fmt.Println(color.New(term.ColorHiCyan).Sprint("Posted " + format.Time(post.CreatedAt)))
	fmt.Println()
	if post.Description != "" {
		fmt.Println(term.GetPlain(post.Description))
		fmt.Println()
	}
	fmt.Println(lib.PostStatusLine(post))
	fmt.Println()

	if len(post.Comments) == 0 {
		fmt.Println("🤷‍♂️ No comments yet.")
		fmt.Println()
		term.PrintCmds("", "comment")
		return
	}

	color.New(color.Bold).Printf("💬 Comments (%d)\n", len(post.Comments))
	fmt.Println()
	for _, comment := range post.Comments {
		author := "someone"
		if comment.User != nil {
			author = comment.User.FullName()
		}
		fmt.Printf("%s · %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(author), format.Time(comment.CreatedAt))
		fmt.Println(term.GetPlain(comment.Comment))
		fmt.Println()
	}
}
