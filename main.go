package main

import (
	"log"
	"os"

	"inteko-cli/api"
	"inteko-cli/auth"
	"inteko-cli/cmd"
	"inteko-cli/fs"
	"inteko-cli/term"
)

func init() {
	// inter-package dependency injection to avoid circular imports
	auth.SetApiClient(api.Client)

	// set up a file logger so terminal output stays clean
	file, err := os.OpenFile(fs.HomeLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		term.OutputErrorAndExit("Error opening log file: %v", err)
	}

	log.SetOutput(file)
}

func main() {
	cmd.Execute()
}
