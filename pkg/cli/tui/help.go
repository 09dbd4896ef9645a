package tui

import (
	"fmt"
	"strings"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// RootMenuHelpContent returns help for root menu
func RootMenuHelpContent() string {
	items := []HelpItem{
		{"1-2", "Select menu option (Dashboard / Add URL)"},
		{"q / Esc", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// DashboardHelpContent returns help for the URL dashboard
func DashboardHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Move between rows"},
		{"1-8", "Sort by column (again to reverse)"},
		{"/", "Search URL and title"},
		{"f", "Cycle status filter"},
		{"l", "Cycle login form filter"},
		{"Space", "Select / unselect row"},
		{"c", "Clear selection"},
		{"r / s", "Refresh / stop highlighted URL"},
		{"R / D", "Refresh / delete selected URLs"},
		{"a", "Add URL"},
		{"Enter", "Show details"},
		{"g", "Reload list"},
		{"n / → , p / ←", "Next / previous page"},
		{"m", "Return to menu"},
		{"q / Esc", "Quit"},
		{"?", "Show this help"},
	}
	return renderHelpItems(items)
}

// AddURLFormHelpContent returns help for add URL form
func AddURLFormHelpContent() string {
	items := []HelpItem{
		{"Enter", "Submit URL for crawling"},
		{"Esc", "Cancel"},
	}
	return renderHelpItems(items)
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	keyStyle := boldStyle.Foreground(colorPrimary)
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(pad(item.Key, 14)),
			item.Description))
	}
	return b.String()
}
