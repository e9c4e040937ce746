package term

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/plandex-ai/survey/v2"
)

func SelectFromList(msg string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message:       color.New(ColorHiMagenta, color.Bold).Sprint(msg),
		Options:       options,
		FilterMessage: "",
	}
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		if err.Error() == "interrupt" {
			os.Exit(0)
		}

		return "", err
	}

	return selected, nil
}

// SelectNamed shows a list of named things and returns the index of the
// chosen one. Used for the address hierarchy pickers during sign up.
func SelectNamed(msg string, names []string) (int, error) {
	selected, err := SelectFromList(msg, names)
	if err != nil {
		return 0, err
	}

	for i, name := range names {
		if name == selected {
			return i, nil
		}
	}

	return 0, fmt.Errorf("selection not found: %s", selected)
}
