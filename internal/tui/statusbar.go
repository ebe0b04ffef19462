package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(articleCount int, filterLabel string, width int, searching bool, refreshing bool) string {
	left := fmt.Sprintf(" %d articles", articleCount)
	if filterLabel != "All News" {
		left += " · " + filterLabel
	}
	if refreshing {
		left += " (refreshing...)"
	}

	right := " f favorite  / search  tab category  r refresh  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(bar)
}
