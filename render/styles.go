package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	totalPadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	totalSizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	// Brace colors cycle by nesting depth; depth zero stays uncolored.
	nestingStyles = []*lipgloss.Style{
		nil,
		stylePtr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))),
		stylePtr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))),
		stylePtr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))),
		stylePtr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))),
		stylePtr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))),
		stylePtr(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))),
	}
)

func stylePtr(s lipgloss.Style) *lipgloss.Style { return &s }

// DetectColor reports whether w is an interactive terminal, the default for
// enabling color output.
func DetectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
