package auth

import (
	"context"
	"fmt"

	"inteko-cli/lib"
	"inteko-cli/term"
	"inteko-cli/types"

	"github.com/fatih/color"
)

// SignUpFlow walks through account creation: identity fields, then the
// address hierarchy narrowed one level at a time (province > district >
// sector > cell > village), then the signup request itself.
func SignUpFlow(ctx context.Context) error {
	nid, err := term.GetRequiredUserStringInput("National ID number:")
	if err != nil {
		return fmt.Errorf("error prompting national id: %v", err)
	}
	if err := lib.ValidateNationalId(nid); err != nil {
		return err
	}

	firstname, err := term.GetRequiredUserStringInput("First name:")
	if err != nil {
		return fmt.Errorf("error prompting first name: %v", err)
	}

	lastname, err := term.GetRequiredUserStringInput("Last name:")
	if err != nil {
		return fmt.Errorf("error prompting last name: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Email:")
	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	phone, err := term.GetRequiredUserStringInput("Phone number:")
	if err != nil {
		return fmt.Errorf("error prompting phone: %v", err)
	}
	if err := lib.ValidatePhoneNumber(phone); err != nil {
		return err
	}

	gender, err := term.SelectFromList("Gender:", []string{"Male", "Female", "Other"})
	if err != nil {
		return fmt.Errorf("error selecting gender: %v", err)
	}

	familyInfo, err := term.GetUserStringInput("Family information (optional):")
	if err != nil {
		return fmt.Errorf("error prompting family info: %v", err)
	}

	address, err := resolveAddress(ctx)
	if err != nil {
		return fmt.Errorf("error resolving address: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	confirmPassword, err := term.GetUserPasswordInput("Confirm password:")
	if err != nil {
		return fmt.Errorf("error prompting password confirmation: %v", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	term.StartSpinner("")
	res, apiErr := apiClient.SignUp(ctx, types.SignUpRequest{
		Firstname:       firstname,
		Lastname:        lastname,
		Email:           email,
		Phone:           phone,
		Role:            "citizen",
		Nid:             nid,
		FamilyInfo:      familyInfo,
		Gender:          gender,
		ProvinceId:      address.provinceId,
		DistrictId:      address.districtId,
		SectorId:        address.sectorId,
		CellId:          address.cellId,
		VillageId:       address.villageId,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing up: %v", apiErr.Msg)
	}

	if res != nil && res.Token != "" {
		err = setAuth(&types.ClientAuth{
			Token: res.Token,
			User:  res.User,
		})

		if err != nil {
			return fmt.Errorf("error setting auth: %v", err)
		}

		fmt.Printf("✅ Account created. Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprintf("<%s %s> %s", firstname, lastname, email))
		return nil
	}

	fmt.Println("✅ Account created.")
	term.PrintCmds("", "sign-in")

	return nil
}

type selectedAddress struct {
	provinceId int
	districtId int
	sectorId   int
	cellId     int
	villageId  int
}

func resolveAddress(ctx context.Context) (*selectedAddress, error) {
	term.StartSpinner("")
	provinces, apiErr := apiClient.ListAddressTree(ctx)
	term.StopSpinner()

	if apiErr != nil {
		return nil, fmt.Errorf("error fetching address data: %v", apiErr.Msg)
	}

	if len(provinces) == 0 {
		return nil, fmt.Errorf("no address data available")
	}

	province, err := pickOne(ctx, "Select province:", len(provinces), func(i int) string { return provinces[i].Name })
	if err != nil {
		return nil, err
	}
	districts := provinces[province].Districts

	district, err := pickOne(ctx, "Select district:", len(districts), func(i int) string { return districts[i].Name })
	if err != nil {
		return nil, err
	}
	sectors := districts[district].Sectors

	sector, err := pickOne(ctx, "Select sector:", len(sectors), func(i int) string { return sectors[i].Name })
	if err != nil {
		return nil, err
	}
	cells := sectors[sector].Cells

	cell, err := pickOne(ctx, "Select cell:", len(cells), func(i int) string { return cells[i].Name })
	if err != nil {
		return nil, err
	}
	villages := cells[cell].Villages

	village, err := pickOne(ctx, "Select village:", len(villages), func(i int) string { return villages[i].Name })
	if err != nil {
		return nil, err
	}

	return &selectedAddress{
		provinceId: provinces[province].Id,
		districtId: districts[district].Id,
		sectorId:   sectors[sector].Id,
		cellId:     cells[cell].Id,
		villageId:  villages[village].Id,
	}, nil
}

func pickOne(_ context.Context, msg string, n int, name func(int) string) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("no options available")
	}

	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = name(i)
	}

	return term.SelectNamed(msg, names)
}
