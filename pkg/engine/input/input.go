// Package input captures single keypresses from a raw-mode terminal and
// maps them to game actions. The game core never reads input itself; the
// driver picks one blocking read implementation at startup.
package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after an
// ESC byte. Returns the arrow code string, or "" for anything else.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Both CSI sequences (ESC [) and SS3 sequences (ESC O) occur in the wild.
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}

	return ""
}

// ReadKey blocks for one keypress and returns its code: a printable
// character as itself ("h", "q", ...) or an arrow code ("arrow_up", ...).
// Unrecognized keys return "".
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	switch {
	case b == 0x1b:
		return tryReadArrowKey()
	case b == 3: // Ctrl+C
		return "ctrl_c"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 32 && b < 127:
		fmt.Print(string(b))
		return string(b)
	}

	return ""
}
