//go:build !unix

package terminal

import (
	"golang.org/x/term"
)

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int, bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w == 0 || h == 0 {
		return 0, 0, false
	}
	return w, h, true
}
