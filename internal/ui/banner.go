package ui

import "github.com/charmbracelet/lipgloss"

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 2)

// RenderBanner renders the demo title inside a rounded box.
// When the active theme disables colors, the title is returned unstyled so
// output stays clean for pipes and logs.
func RenderBanner(title string) string {
	if GetCurrentTheme().Name == "none" {
		return title
	}
	return bannerStyle.Render(title)
}
