package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dreambig/appgen/internal/cli/formatter"
	"github.com/dreambig/appgen/internal/mapper"
)

// formTheme returns the huh theme matching the formatter palette.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString(mapper.Checked + " ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString(mapper.Unchecked + " ")
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// initAnswers collects the fields asked for by init.
type initAnswers struct {
	ProjectName  string
	Organization string
	Volunteers   string
	SDGs         []int
}

// sdgOptions lists the 17 goals as multi-select options.
func sdgOptions() []huh.Option[int] {
	goals := mapper.SDGGoals()
	opts := make([]huh.Option[int], len(goals))
	for i, g := range goals {
		opts[i] = huh.NewOption(fmt.Sprintf("%2d %s", g.Number, g.Label), g.Number)
	}
	return opts
}

// initForm asks for the fields that head the application form.
func initForm(a *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("申請計畫名稱 (Project name)").
				Value(&a.ProjectName).
				Validate(validateRequired),
			huh.NewInput().
				Title("申請單位全銜 (Organization full name)").
				Value(&a.Organization).
				Validate(validateRequired),
			huh.NewInput().
				Title("固定志工人數 (Volunteers, blank to skip)").
				Placeholder("20").
				Value(&a.Volunteers).
				Validate(validateNonNegativeInt),
		),
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("對應之永續發展目標 (SDGs)").
				Options(sdgOptions()...).
				Height(10).
				Value(&a.SDGs),
		),
	).WithTheme(formTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
