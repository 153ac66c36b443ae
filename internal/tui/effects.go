package tui

import (
	"io"

	"github.com/atotto/clipboard"
)

// Clipboard receives copied snippet text.
type Clipboard interface {
	WriteAll(text string) error
}

// Bell plays the keystroke sound.
type Bell interface {
	Ring()
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

type terminalBell struct {
	w io.Writer
}

func (b terminalBell) Ring() {
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		// Best-effort bell.
		_ = err
	}
}

// TerminalBell returns a Bell that writes BEL to w.
func TerminalBell(w io.Writer) Bell {
	return terminalBell{w: w}
}
