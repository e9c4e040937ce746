package term

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Println("Error getting terminal size:", err)
		return 80
	}
	return width
}
