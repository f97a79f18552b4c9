package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SaveStatusPill renders the save indicator shown next to the menu title.
func SaveStatusPill(status domain.SaveStatus) string {
	switch status {
	case domain.StatusSaved:
		return StyleGreen.Render("● Saved")
	case domain.StatusNotSaved:
		return StyleYellow.Render("○ Not Saved")
	default:
		return StyleDim.Render("○ Unknown")
	}
}

// PriorityBadge renders an optional schedule priority such as "P1".
func PriorityBadge(p *int) string {
	if p == nil {
		return StyleDim.Render("--")
	}
	label := fmt.Sprintf("P%d", *p)
	switch {
	case *p <= 1:
		return StyleRed.Render(label)
	case *p == 2:
		return StyleYellow.Render(label)
	default:
		return StyleBlue.Render(label)
	}
}

// PermissionBadge renders a user's permission level.
func PermissionBadge(p domain.Permission) string {
	if p == domain.PermissionFull {
		return StylePurple.Render("full")
	}
	return StyleDim.Render(string(p))
}

// Header renders a section header in the header color with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
