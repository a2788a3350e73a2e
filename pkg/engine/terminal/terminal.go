// Package terminal answers questions about the terminal the game is played in.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth = 80
	MinWidth     = 20
	MaxWidth     = 100 // the board reads badly when stretched wider
)

// clearScreen erases the screen and homes the cursor
const clearScreen = "\x1b[2J\x1b[H"

// Terminal is one output stream, identified by its file descriptor.
type Terminal struct {
	fd int
}

// Stdout returns the terminal behind standard output.
func Stdout() Terminal {
	return Terminal{fd: int(os.Stdout.Fd())}
}

// FromFile returns the terminal behind f.
func FromFile(f *os.File) Terminal {
	return Terminal{fd: int(f.Fd())}
}

// IsTerminal reports whether the stream is an interactive terminal.
func (t Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// Width returns the usable width in columns.
// Falls back to DefaultWidth if the size cannot be determined.
func (t Terminal) Width() int {
	width, _, err := term.GetSize(t.fd)
	if err != nil {
		return DefaultWidth
	}
	return ClampWidth(width)
}

// Clear wipes the screen when the stream is a terminal. Piped output is
// left alone so transcripts stay readable.
func (t Terminal) Clear(w io.Writer) {
	if !t.IsTerminal() {
		return
	}
	io.WriteString(w, clearScreen)
}

// ClampWidth keeps a reported width between MinWidth and MaxWidth.
func ClampWidth(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	if width > MaxWidth {
		return MaxWidth
	}
	return width
}
