// Package tui is the terminal view over the article pipeline: a filterable
// list with favorites, search and manual refresh. It owns the session
// state (current collection, active filter) and passes it into pipeline
// calls explicitly.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dloza02/dlo-creative-lab/internal/browser"
	"github.com/dloza02/dlo-creative-lab/internal/cache"
	"github.com/dloza02/dlo-creative-lab/internal/classify"
	"github.com/dloza02/dlo-creative-lab/internal/favorites"
	"github.com/dloza02/dlo-creative-lab/internal/pipeline"
	"github.com/dloza02/dlo-creative-lab/internal/prefs"
)

const loadTimeout = 60 * time.Second

// RunOpts holds the collaborators the view needs.
type RunOpts struct {
	Pipeline   *pipeline.Pipeline
	CacheStore *cache.Store
	Favorites  *favorites.Store
	Prefs      *prefs.Store
}

type App struct {
	pipe  *pipeline.Pipeline
	cc    *cache.Store
	favs  *favorites.Store
	prefs *prefs.Store

	articles []cache.Article
	cursor   int
	tabs     tabBar

	searchInput textinput.Model
	searching   bool
	query       string

	spinner    spinner.Model
	loading    bool
	refreshing bool
	err        error

	width  int
	height int
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		pipe:        opts.Pipeline,
		cc:          opts.CacheStore,
		favs:        opts.Favorites,
		prefs:       opts.Prefs,
		searchInput: ti,
		spinner:     sp,
		tabs:        newTabBar(),
		loading:     true,
	}

	if p := a.prefs.Load(); p.SelectedCategory != "" {
		a.tabs.selectID(p.SelectedCategory)
	}
	return a
}

func Run(opts RunOpts) error {
	opts.Prefs.TouchLastVisit()
	_, err := tea.NewProgram(NewApp(opts), tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		articles, err := a.pipe.Load(ctx)
		if err != nil {
			return loadErrMsg{err}
		}
		return articlesLoadedMsg{articles}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.loading && !a.refreshing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case articlesLoadedMsg:
		a.loading = false
		a.refreshing = false
		a.err = nil
		a.articles = pipeline.ApplyFavorites(msg.articles, a.favs)
		a.clampCursor()
		return a, nil

	case loadErrMsg:
		a.loading = false
		a.refreshing = false
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		if a.searching {
			return a.updateSearch(msg)
		}
		return a.updateKeys(msg)
	}
	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.query = ""
		a.searchInput.SetValue("")
		a.clampCursor()
		return a, nil
	case "enter":
		a.searching = false
		a.query = a.searchInput.Value()
		a.cursor = 0
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}

	case "tab", "right", "l":
		a.tabs.next()
		a.saveCategory()
		a.cursor = 0
	case "shift+tab", "left", "h":
		a.tabs.prev()
		a.saveCategory()
		a.cursor = 0

	case "/":
		a.searching = true
		a.searchInput.SetValue("")
		return a, a.searchInput.Focus()

	case "f":
		a.toggleFavorite()

	case "r":
		if !a.refreshing {
			a.refreshing = true
			a.cc.Clear()
			return a, tea.Batch(a.spinner.Tick, a.loadCmd())
		}

	case "enter":
		if sel, ok := a.selected(); ok && sel.Link != "" {
			// Fire and forget; the list stays up either way.
			_ = browser.Open(sel.Link)
		}
	}
	return a, nil
}

// visible applies the active category filter and search query.
func (a *App) visible() []cache.Article {
	out := pipeline.Filter(a.articles, a.tabs.selected().ID, a.favs)
	return pipeline.Search(out, a.query)
}

func (a *App) selected() (cache.Article, bool) {
	v := a.visible()
	if a.cursor < 0 || a.cursor >= len(v) {
		return cache.Article{}, false
	}
	return v[a.cursor], true
}

func (a *App) toggleFavorite() {
	sel, ok := a.selected()
	if !ok {
		return
	}
	if sel.IsFavorite {
		a.favs.Remove(sel.ID)
	} else {
		a.favs.Add(sel.ID)
	}
	for i := range a.articles {
		if a.articles[i].ID == sel.ID {
			a.articles[i].IsFavorite = !sel.IsFavorite
		}
	}
	a.clampCursor()
}

func (a *App) saveCategory() {
	p := a.prefs.Load()
	p.SelectedCategory = a.tabs.selected().ID
	a.prefs.Save(p)
}

func (a *App) clampCursor() {
	if n := len(a.visible()); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	header := headerStyle.Render("creativelab") +
		itemTimeStyle.Render("  AI in design, daily")
	tabs := a.tabs.render(a.width)

	var body string
	bodyHeight := a.height - 5
	switch {
	case a.loading:
		body = "\n  " + a.spinner.View() + " Loading feeds..."
	case a.err != nil:
		body = "\n  " + errorStyle.Render("Could not load articles.") +
			"\n  " + itemTimeStyle.Render(a.err.Error())
	default:
		visible := a.visible()
		if len(visible) == 0 {
			body = "\n  " + emptyStyle.Render(a.emptyText())
		} else {
			body = renderList(visible, a.cursor, bodyHeight, a.width)
		}
	}

	search := ""
	if a.searching {
		search = a.searchInput.View()
	}

	status := renderStatusBar(len(a.visible()), a.tabs.selected().Name, a.width, a.searching, a.refreshing)

	sections := []string{header, tabs, body}
	if search != "" {
		sections = append(sections, search)
	}
	content := strings.Join(sections, "\n")

	filler := a.height - lipgloss.Height(content) - 1
	if filler > 0 {
		content += strings.Repeat("\n", filler)
	}
	return content + "\n" + status
}

// emptyText distinguishes the favorites tab's empty state from the
// default one.
func (a *App) emptyText() string {
	if a.tabs.selected().ID == classify.Favorites {
		return "No favorites yet. Press f on an article to save it."
	}
	if a.query != "" {
		return "No articles match your search."
	}
	return "No articles in this category right now."
}
