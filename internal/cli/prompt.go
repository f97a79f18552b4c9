package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errAborted = errors.New("aborted")

func plannerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirm asks a yes/no question. It defaults to No.
func confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, errAborted
	}
	return ok, err
}

// promptUsername asks for a login on the identification screen.
func promptUsername() (string, error) {
	var username string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("admin-full").
				Value(&username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("username is required")
					}
					return nil
				}),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", errAborted
	}
	return strings.TrimSpace(username), err
}
