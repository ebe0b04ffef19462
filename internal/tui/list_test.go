package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/dloza02/dlo-creative-lab/internal/cache"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.input, tt.n); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
		{time.Time{}, "unknown"},
	}
	for _, tt := range tests {
		if got := relativeTime(tt.t); got != tt.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestRenderListKeepsCursorVisible(t *testing.T) {
	var articles []cache.Article
	for i := 0; i < 20; i++ {
		articles = append(articles, cache.Article{
			Title:     strings.Repeat("x", 5),
			Source:    "Source",
			Published: time.Now(),
		})
	}

	// 9 rows fit 3 items; cursor at the end must still be rendered.
	out := renderList(articles, 19, 9, 80)
	if !strings.Contains(out, ">") {
		t.Error("expected the selected item marker in the visible window")
	}
}

func TestTabBarCycles(t *testing.T) {
	tb := newTabBar()
	start := tb.selected().ID

	for range tb.categories {
		tb.next()
	}
	if tb.selected().ID != start {
		t.Errorf("full cycle should return to %q, got %q", start, tb.selected().ID)
	}

	tb.prev()
	if tb.selected().ID != "favorites" {
		t.Errorf("prev from first should wrap to last, got %q", tb.selected().ID)
	}
}

func TestTabBarSelectID(t *testing.T) {
	tb := newTabBar()
	tb.selectID("visualization")
	if tb.selected().ID != "visualization" {
		t.Errorf("selectID failed, got %q", tb.selected().ID)
	}

	tb.selectID("no-such-category")
	if tb.selected().ID != "visualization" {
		t.Error("unknown id must not move the cursor")
	}
}
