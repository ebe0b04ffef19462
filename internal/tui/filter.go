package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dloza02/dlo-creative-lab/internal/classify"
)

// tabBar is the category selector rendered under the header. Tabs follow
// the canonical category order.
type tabBar struct {
	categories []classify.Category
	cursor     int
}

func newTabBar() tabBar {
	return tabBar{categories: classify.Categories()}
}

func (t *tabBar) selected() classify.Category {
	return t.categories[t.cursor]
}

func (t *tabBar) selectID(id string) {
	for i, c := range t.categories {
		if c.ID == id {
			t.cursor = i
			return
		}
	}
}

func (t *tabBar) next() {
	t.cursor = (t.cursor + 1) % len(t.categories)
}

func (t *tabBar) prev() {
	t.cursor = (t.cursor - 1 + len(t.categories)) % len(t.categories)
}

func (t *tabBar) render(width int) string {
	var parts []string
	for i, c := range t.categories {
		style := tabInactiveStyle
		if i == t.cursor {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(c.Name))
	}

	// Stop adding tabs once the row would overflow.
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += " "
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}
	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row)
}
