package lib

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// CommandContext bounds every request issued by a command to the
// command's own lifetime: an interrupt cancels in-flight requests instead
// of leaving them to complete against a screen nobody is watching.
func CommandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
