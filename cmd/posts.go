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

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"po"},
	Short:   "List posts from your village",
	Args:    cobra.NoArgs,
	Run:     posts,
}

func init() {
	RootCmd.AddCommand(postsCmd)
}

func posts(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	term.StartSpinner("")
	posts, apiErr := api.Client.ListCitizenPosts(ctx)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(posts) == 0 {
		fmt.Println("🤷‍♂️ No posts available at the moment.")
		return
	}

	color.New(color.Bold, term.ColorHiBlue).Println("📢 Posts from your village")
	fmt.Println()

	for i, post := range posts {
		num := color.New(color.Bold, term.ColorHiCyan).Sprintf("%d.", i+1)
		fmt.Printf("%s %s · %s\n", num, color.New(color.Bold).Sprint(post.Title), format.Time(post.CreatedAt))
		if post.Description != "" {
			fmt.Println(term.GetPlain(post.Description))
		}
		fmt.Println("  " + lib.PostStatusLine(post))
		if len(post.Comments) > 0 {
			fmt.Printf("  💬 %d comment(s)\n", len(post.Comments))
		}
		fmt.Println()
	}

	term.PrintCmds("", "post", "comment")
}
