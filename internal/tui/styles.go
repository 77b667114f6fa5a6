package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "252"
	colorText   = "250"
	colorMuted  = "243"
	colorBorder = "240"
	colorActive = "255"
)

var styles = struct {
	Brand     lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavBar    lipgloss.Style

	Name    lipgloss.Style
	Role    lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Arrow     lipgloss.Style

	Menu       lipgloss.Style
	MenuCursor lipgloss.Style
	Footer     lipgloss.Style
}{
	Brand:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)).Bold(true).PaddingRight(2),
	NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)).Padding(0, 1),
	NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color(colorActive)).Bold(true).Underline(true).Padding(0, 1),
	NavBar: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(colorBorder)),

	Name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorActive)),
	Role:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)).Italic(true),
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).MarginBottom(1),
	Body:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Link:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)).Underline(true),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorActive)),
	Arrow:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorActive)).Bold(true),

	Menu: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Padding(1, 4),
	MenuCursor: lipgloss.NewStyle().Foreground(lipgloss.Color(colorActive)).Bold(true),
	Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
}
