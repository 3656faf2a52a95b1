package pretty

import (
	"os"

	"github.com/joshyorko/scriptboard/common"
	"golang.org/x/term"
)

// TerminalHeight returns the terminal height in rows, 24 when unknown.
func TerminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		common.Trace("Failed to get terminal height, using fallback: %v", err)
		return 24
	}
	return height
}

// TerminalWidth returns the terminal width in columns, 80 when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	return width
}
