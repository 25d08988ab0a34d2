package common

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ErrorText renders msg in red when w is a terminal and as plain text otherwise.
func ErrorText(w io.Writer, msg string) string {
	if !IsTerminal(w) {
		return msg
	}
	return errorStyle.Render(msg)
}
