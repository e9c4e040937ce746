package cmd

import (
	"fmt"
	"os"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/format"
	"inteko-cli/lib"
	"inteko-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var penaltiesCmd = &cobra.Command{
	Use:     "penalties",
	Aliases: []string{"pe", "fines"},
	Short:   "List your fines",
	Args:    cobra.NoArgs,
	Run:     penalties,
}

func init() {
	RootCmd.AddCommand(penaltiesCmd)
}

func penalties(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	term.StartSpinner("")
	penalties, apiErr := api.Client.ListMyPenalties(ctx)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(penalties) == 0 {
		fmt.Println("🤷‍♂️ No fines found.")
		return
	}

	color.New(color.Bold, term.ColorHiBlue).Println("🚨 My fines")
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Post", "Fine", "Status", "Offered On"})

	var unpaidAmounts []string
	for i, p := range penalties {
		postTitle := ""
		if p.Post != nil {
			postTitle = p.Post.Title
		}

		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			postTitle,
			format.Amount(p.Penarity),
			lib.PenaltyStatusLine(p),
			format.Date(p.CreatedAt),
		})

		if !p.IsPaid() {
			unpaidAmounts = append(unpaidAmounts, p.Penarity)
		}
	}

	table.Render()
	fmt.Println()

	if len(unpaidAmounts) > 0 {
		fmt.Printf("Unpaid total: %s\n", color.New(color.Bold, term.ColorHiRed).Sprint(format.SumAmounts(unpaidAmounts)))
		fmt.Println("You must go to the village to report about unpaid fines, or pay now:")
		fmt.Println()
		term.PrintCmds("", "pay")
	} else {
		fmt.Println(color.New(term.ColorHiGreen).Sprint("🎉 All fines resolved."))
	}
}
