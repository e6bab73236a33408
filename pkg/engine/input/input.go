package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// ReadKey puts the terminal into raw mode, reads a single key press and
// restores the terminal. The result is a binding code such as "arrow_up",
// "w" or "ctrl_c".
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return decodeKey(stdinReader)
}

// decodeKey reads one key from r, folding arrow escape sequences into
// arrow_* codes. Unknown escape sequences yield "".
func decodeKey(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\r' || b1 == '\n':
		return "enter", nil
	case b1 == 0x1b:
		return decodeEscape(r)
	case b1 >= 32 && b1 < 127:
		return strings.ToLower(string(b1)), nil
	}
	return "", nil
}

// decodeEscape handles both CSI (ESC [) and SS3 (ESC O) arrow sequences
func decodeEscape(r io.ByteReader) (string, error) {
	if br, ok := r.(*bufio.Reader); ok && br.Buffered() == 0 {
		// A lone ESC press
		return "escape", nil
	}

	b2, err := r.ReadByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence, discard it
	return "", nil
}
