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

var payNumber string

var payCmd = &cobra.Command{
	Use:   "pay [fine-#]",
	Short: "Pay an unpaid fine by mobile money",
	Args:  cobra.MaximumNArgs(1),
	Run:   pay,
}

func init() {
	RootCmd.AddCommand(payCmd)

	payCmd.Flags().StringVar(&payNumber, "number", "", "mobile money phone number")
}

func pay(cmd *cobra.Command, args []string) {
	ctx, cancel := lib.CommandContext()
	defer cancel()

	auth.MustResolveAuth(ctx)

	penalty, all := resolvePenalty(ctx, args, true)
	if penalty == nil {
		return
	}

	if penalty.IsPaid() {
		fmt.Println(color.New(term.ColorHiGreen).Sprint("🎉 This fine is already paid."))
		return
	}

	number := payNumber
	if number == "" {
		var err error
		number, err = term.GetRequiredUserStringInput("Phone number to pay from:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting phone number: %v", err)
		}
	}

	if err := lib.ValidatePhoneNumber(number); err != nil {
		term.OutputSimpleError("%v", err)
		return
	}

	confirmed, err := term.ConfirmYesNo("Pay %s from %s?", format.Amount(penalty.Penarity), number)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println("Payment canceled.")
		return
	}

	term.StartSpinner("Processing payment...")
	message, apiErr := api.Client.PayPenalty(ctx, types.PayPenaltyRequest{
		PenaltyId: penalty.Id,
		Number:    number,
	})

	if apiErr != nil {
		term.StopSpinner()
		term.HandleApiError(apiErr)
	}

	// optimistic flip, then a confirming re-fetch to catch drift between
	// the local projection and the server's state
	lib.ApplyPenaltyPaid(all, penalty.Id)

	refreshed, refreshErr := api.Client.ListMyPenalties(ctx)
	term.StopSpinner()

	if message == "" {
		message = "Payment accepted."
	}
	fmt.Println("✅ " + term.Capitalize(message))

	if refreshErr != nil {
		// the payment went through; only the confirmation read failed
		term.OutputSimpleError("couldn't confirm with the server: %s", refreshErr.Msg)
		return
	}

	for _, p := range refreshed {
		if p.Id == penalty.Id && !p.IsPaid() {
			term.OutputSimpleError("the server still lists this fine as %q — it may take a moment to settle", p.Status)
			return
		}
	}

	fmt.Println(color.New(term.ColorHiGreen).Sprint("🎉 Congratulations! Your penalty has been resolved."))
}
