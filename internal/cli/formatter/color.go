package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/domain"
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

// Predefined lipgloss styles.
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

// GradeStyle returns the color a grade is shown in.
func GradeStyle(g domain.GradeLevel) lipgloss.Style {
	switch g {
	case domain.GradeExcellent:
		return StyleGreen
	case domain.GradeGood:
		return StyleBlue
	case domain.GradeQuestionable:
		return StyleYellow
	case domain.GradeDeficient:
		return StyleRed
	default:
		return StyleDim
	}
}

// GradeCode renders the short grade code in its color.
func GradeCode(g domain.GradeLevel) string {
	return GradeStyle(g).Render(g.Code())
}

// GradeBadge renders a grade as "● Label".
func GradeBadge(g domain.GradeLevel) string {
	return GradeStyle(g).Render("● " + g.Label())
}

// Legend lists every grade code with its label, in cycle order.
func Legend() string {
	parts := make([]string, 0, len(domain.GradeCycle))
	for _, g := range domain.GradeCycle {
		parts = append(parts, GradeCode(g)+" "+Dim(g.Label()))
	}
	return Dim("Legend: ") + strings.Join(parts, "  ")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
