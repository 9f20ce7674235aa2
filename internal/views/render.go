package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	Footer     string
	Theme      string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lightHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	lightFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func RenderApp(data AppData) string {
	header := headerStyle
	footer := footerStyle
	if data.Theme == "light" {
		header = lightHeaderStyle
		footer = lightFooterStyle
	}

	left := panelStyle.Width(58).Render(data.LeftPane)
	right := panelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		header.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md with the glamour style matching the active theme.
func RenderMarkdown(md string, theme string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if theme == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
