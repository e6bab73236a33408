// Package terminal wraps the few terminal queries the text renderer needs.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin is a terminal that can enter raw mode
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Clear erases the screen and homes the cursor
func Clear(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// Fits reports whether a grid of size cells, drawn cellWidth columns wide,
// plus extra rows of status text, fits the current terminal
func Fits(size, cellWidth, extra int) bool {
	width, height := GetSize()
	return size*cellWidth <= width && size+extra <= height
}
