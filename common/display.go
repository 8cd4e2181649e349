// Package common provides the shared logging, configuration and terminal display helpers
package common

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	PrimaryColor    = lipgloss.Color("#7D56F4") // Purple
	SuccessColor    = lipgloss.Color("#00FF00") // Bright Green
	WarningColor    = lipgloss.Color("#F5B041") // Yellow
	ErrorColor      = lipgloss.Color("#FF0000") // Bright Red
	UnknownColor    = lipgloss.Color("#808080") // Grey
	NormalTextColor = lipgloss.Color("#FFFFFF") // White
)

// Status is the display state of a single line item.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) color() lipgloss.Color {
	switch s {
	case StatusOK:
		return SuccessColor
	case StatusWarning:
		return WarningColor
	case StatusCritical:
		return ErrorColor
	default:
		return UnknownColor
	}
}

// DisplayBox creates a nice looking box around content
func DisplayBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0).
		Width(80)

	titleStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	output := titleStyle.Render(title) + "\n\n" + content

	return boxStyle.Render(output)
}

// SectionTitle formats a section title
func SectionTitle(title string) string {
	sectionStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	return sectionStyle.Render(title)
}

// StatusListItem formats "•  label  value" with the value colored by status.
func StatusListItem(label string, value string, status Status) string {
	statusStyle := lipgloss.NewStyle().Foreground(status.color())

	contentStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		PaddingLeft(8)

	itemStyle := lipgloss.NewStyle().
		Foreground(NormalTextColor)

	line := fmt.Sprintf("•  %-12s  %s",
		label,
		statusStyle.Render(value))

	return contentStyle.Render(itemStyle.Render(line))
}

// AlertLine renders a verdict message colored by its status.
func AlertLine(message string, status Status) string {
	return lipgloss.NewStyle().
		Foreground(status.color()).
		PaddingLeft(8).
		Render(message)
}
