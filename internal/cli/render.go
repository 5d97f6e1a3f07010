package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dmitrijs2005/randomusers/internal/models"
)

var (
	rowNumStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	nameStyle       = lipgloss.NewStyle().Bold(true)
	metaStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badgeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	emptyTitleStyle = lipgloss.NewStyle().Bold(true)
	detailStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const fallbackWidth = 100

// terminalWidth returns the current terminal width, or a fallback when
// stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// formatRow renders one list row: row number, bookmark marker, name, and
// contact metadata, truncated to width.
func formatRow(rowNum int, u models.User, bookmarked bool, width int) string {
	marker := " "
	if bookmarked {
		marker = badgeStyle.Render("★")
	}

	line := fmt.Sprintf("%s %s %s  %s",
		rowNumStyle.Render(fmt.Sprintf("%3d.", rowNum)),
		marker,
		nameStyle.Render(u.FullName()),
		metaStyle.Render(fmt.Sprintf("%s · %s, %s", u.Email, u.Location.City, u.Location.Country)),
	)
	return truncate(line, width)
}

// truncate clamps s to width visible cells, keeping ANSI sequences intact.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		default:
			if w >= width-1 {
				b.WriteString("…")
				b.WriteString("\x1b[0m")
				return b.String()
			}
			b.WriteRune(r)
			w++
		}
	}
	return b.String()
}
