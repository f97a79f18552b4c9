package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/routes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const menuPaneWidth = 26

type tuiKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Save    key.Binding
	Logout  key.Binding
	Refresh key.Binding
	PageUp  key.Binding
	PageDn  key.Binding
	Quit    key.Binding
}

func defaultTUIKeyMap() tuiKeyMap {
	return tuiKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Logout:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		PageUp:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDn:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k tuiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Save, k.Logout, k.Quit}
}

func (k tuiKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Refresh, k.PageUp, k.PageDn}}
}

type identifiedMsg struct {
	username string
	err      error
}

type savedMsg struct {
	saved bool
	err   error
}

type loggedOutMsg struct{ err error }

// plannerModel is the bubbletea model behind `plannerhub tui`: a menu pane
// next to a scrollable view of the selected route.
type plannerModel struct {
	ctx  context.Context
	app  *App
	keys tuiKeyMap
	help help.Model

	width, height int

	menu   []routes.Entry
	cursor int
	// requested is the path to return to after identification.
	requested string
	route     routes.Route

	content viewport.Model
	login   textinput.Model

	flash    string
	quitting bool
}

func newPlannerModel(ctx context.Context, app *App, path string) plannerModel {
	in := textinput.New()
	in.Placeholder = "username"
	in.Prompt = "› "
	in.CharLimit = 64

	m := plannerModel{
		ctx:       ctx,
		app:       app,
		keys:      defaultTUIKeyMap(),
		help:      help.New(),
		requested: path,
		content:   viewport.New(0, 0),
		login:     in,
	}
	m.open(path)
	return m
}

func (m plannerModel) identifying() bool { return m.route.IsIdentification() }

func (m plannerModel) Init() tea.Cmd {
	if m.identifying() {
		return textinput.Blink
	}
	return nil
}

// open resolves path and renders it into the content viewport.
func (m *plannerModel) open(path string) {
	doc := m.app.State.Current()
	m.route = routes.Resolve(doc, path, m.app.State.IsAuthenticated())
	m.menu = routes.Menu(doc)
	for i, e := range m.menu {
		if e.Path == m.route.Path {
			m.cursor = i
		}
	}

	if m.identifying() {
		m.login.Focus()
		return
	}
	m.login.Blur()

	out, err := renderRoute(m.app, m.route)
	if err != nil {
		out = formatter.StyleRed.Render(err.Error())
	}
	m.content.SetContent(out)
	m.content.GotoTop()
}

func (m *plannerModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.content.Width = max(w-menuPaneWidth-2, 20)
	m.content.Height = max(h-4, 3)
}

func (m plannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.identifying() {
			return m.updateIdentification(msg)
		}
		return m.updateBrowse(msg)

	case identifiedMsg:
		if msg.err != nil {
			m.flash = formatter.StyleRed.Render(msg.err.Error())
			m.login.SetValue("")
			return m, nil
		}
		m.flash = "Signed in as " + msg.username
		if m.requested == routes.Identification {
			m.requested = routes.Root
		}
		m.open(m.requested)
		return m, nil

	case savedMsg:
		switch {
		case msg.err != nil:
			m.flash = formatter.StyleRed.Render(msg.err.Error())
		case msg.saved:
			m.flash = "Saved."
		}
		m.open(m.route.Path)
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.flash = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.flash = "Signed out."
		m.requested = m.route.Path
		m.login.SetValue("")
		m.open(m.route.Path)
		return m, textinput.Blink
	}

	if m.identifying() {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m plannerModel) updateIdentification(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.identifyCmd(m.login.Value())
	}
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return m, cmd
}

func (m plannerModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.menu) {
			m.requested = m.menu[m.cursor].Path
			m.open(m.requested)
		}
	case key.Matches(msg, m.keys.Refresh):
		m.open(m.route.Path)
	case key.Matches(msg, m.keys.Save):
		return m, m.saveCmd()
	case key.Matches(msg, m.keys.Logout):
		return m, m.logoutCmd()
	case key.Matches(msg, m.keys.PageUp, m.keys.PageDn):
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m plannerModel) identifyCmd(username string) tea.Cmd {
	ctx, users := m.ctx, m.app.Users
	return func() tea.Msg {
		u, err := users.Identify(ctx, username)
		return identifiedMsg{username: u.Username, err: err}
	}
}

func (m plannerModel) saveCmd() tea.Cmd {
	ctx, state := m.ctx, m.app.State
	return func() tea.Msg {
		saved, err := state.SaveExplicit(ctx)
		return savedMsg{saved: saved, err: err}
	}
}

func (m plannerModel) logoutCmd() tea.Cmd {
	ctx, users := m.ctx, m.app.Users
	return func() tea.Msg {
		return loggedOutMsg{err: users.Logout(ctx)}
	}
}

func (m plannerModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if m.identifying() {
		sections = append(sections,
			formatter.Header("Identification"),
			m.login.View(),
		)
	} else {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, m.renderMenu(), "  ", m.content.View()))
	}
	if m.flash != "" {
		sections = append(sections, m.flash)
	}
	if !m.identifying() {
		sections = append(sections, m.help.View(m.keys))
	}
	return strings.Join(sections, "\n")
}

func (m plannerModel) renderHeader() string {
	doc := m.app.State.Current()
	if doc == nil {
		return formatter.StylePurple.Render("plannerhub")
	}
	header := formatter.StylePurple.Render(doc.Menu.Title) + "  " + formatter.SaveStatusPill(doc.App.SaveStatus)
	if u, ok := m.app.Users.ActiveUser(); ok {
		header += "  " + formatter.Dim(u.Username)
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m plannerModel) renderMenu() string {
	var b strings.Builder
	for i, e := range m.menu {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		title := formatter.Truncate(e.Title, menuPaneWidth-4)
		if e.Path == m.route.Path {
			title = formatter.Bold(title)
		}
		b.WriteString(marker + title + "\n")
	}
	return lipgloss.NewStyle().Width(menuPaneWidth).Render(strings.TrimRight(b.String(), "\n"))
}
