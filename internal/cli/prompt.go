package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errAborted is returned when the user backs out of a prompt.
var errAborted = errors.New("aborted")

func taskmasterHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func huhConfirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(taskmasterHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, errAborted
		}
		return false, err
	}
	return ok, nil
}

func huhPrompt(title string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("required")
					}
					return nil
				}),
		),
	).WithTheme(taskmasterHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errAborted
		}
		return "", err
	}
	return value, nil
}

// nameFromArgs joins args into a name, prompting for one when none were
// given and the session is interactive.
func nameFromArgs(app *App, args []string, what string) (string, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name != "" {
		return name, nil
	}
	if !app.IsInteractive() {
		return "", fmt.Errorf("%s name is required", what)
	}
	return app.Prompt(strings.ToUpper(what[:1]) + what[1:] + " name")
}

// confirmOrYes returns true when --yes was given or the user confirms.
// Non-interactive sessions without --yes are refused.
func confirmOrYes(app *App, yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.IsInteractive() {
		return false, fmt.Errorf("confirmation required: re-run with --yes")
	}
	return app.Confirm(title)
}
