package fs

import (
	"os"
	"path/filepath"

	"inteko-cli/term"
)

var HomeDir string
var HomeIntekoDir string
var HomeAuthPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("INTEKO_ENV") == "development" {
		HomeIntekoDir = filepath.Join(home, ".inteko-home-dev")
	} else {
		HomeIntekoDir = filepath.Join(home, ".inteko-home")
	}

	err = os.MkdirAll(HomeIntekoDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeAuthPath = filepath.Join(HomeIntekoDir, "auth.json")
	HomeLogPath = filepath.Join(HomeIntekoDir, "inteko.log")
}
