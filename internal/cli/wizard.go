package cli

import (
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/template"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// learnpathHuhTheme returns a custom huh theme using the Gruvbox palette.
func learnpathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(learnpathHuhTheme()).WithShowHelp(false)
}

func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRequired)
}

func passwordInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(value)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

// signupForm collects the account fields. The confirmation is checked by
// the auth service, not here, so a mismatch surfaces as one error path.
func signupForm(name, email, password, confirm *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Placeholder("optional").Value(name),
			requiredInput("Email", "you@example.com", email),
			passwordInput("Password", password),
			passwordInput("Confirm Password", confirm),
		),
	)
}

func loginForm(email, password *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Email", "you@example.com", email),
			passwordInput("Password", password),
		),
	)
}

func difficultySelect(value *domain.Difficulty) *huh.Select[domain.Difficulty] {
	return huh.NewSelect[domain.Difficulty]().
		Title("Difficulty").
		Options(
			huh.NewOption("Beginner", domain.DifficultyBeginner),
			huh.NewOption("Intermediate", domain.DifficultyIntermediate),
			huh.NewOption("Advanced", domain.DifficultyAdvanced),
		).
		Value(value)
}

// planForm asks for a field, offering the prebuilt roadmaps as suggestions.
func planForm(field *string, difficulty *domain.Difficulty) *huh.Form {
	suggestions := make([]string, 0, len(template.Roadmaps()))
	for _, r := range template.Roadmaps() {
		suggestions = append(suggestions, r.Title)
	}
	return newForm(
		huh.NewGroup(
			requiredInput("What do you want to learn?", "e.g. Web Development", field).
				Suggestions(suggestions),
			difficultySelect(difficulty),
		),
	)
}
