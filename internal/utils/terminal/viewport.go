package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var truncatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))

// Viewport tracks the terminal size for a bubbletea model and sizes rendered
// sections to fit it.
type Viewport struct {
	Width  int
	Height int
}

// NewViewport returns a viewport with conventional 80x24 dimensions, used
// until the first tea.WindowSizeMsg arrives.
func NewViewport() *Viewport {
	return &Viewport{Width: 80, Height: 24}
}

// Resize records the dimensions carried by a tea.WindowSizeMsg.
func (v *Viewport) Resize(msg tea.WindowSizeMsg) {
	v.Width = msg.Width
	v.Height = msg.Height
}

// FitSection constrains a bordered section style to the terminal width.
func (v *Viewport) FitSection(style lipgloss.Style) lipgloss.Style {
	w := v.Width - 4
	if w < 40 {
		w = 40
	}
	return style.Width(w)
}

// FitTitle constrains a title bar style to the terminal width.
func (v *Viewport) FitTitle(style lipgloss.Style) lipgloss.Style {
	return style.Width(v.Width - 2)
}

// ContentWidth returns the width available inside a bordered section.
func (v *Viewport) ContentWidth() int {
	w := v.Width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// ClampHeight drops trailing lines that would scroll off screen and marks
// the cut.
func (v *Viewport) ClampHeight(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= v.Height-1 {
		return content
	}

	lines = lines[:v.Height-2]
	lines = append(lines, truncatedStyle.Render("... (truncated)"))
	return strings.Join(lines, "\n")
}

// HelpLine renders a centered help line across the full terminal width.
func (v *Viewport) HelpLine(text string, style lipgloss.Style) string {
	return style.
		Width(v.Width).
		Align(lipgloss.Center).
		Render(text)
}
