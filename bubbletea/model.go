package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/ansi"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the document preview.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	doc    docconv.Document
	title  string
	theme  docconv.Theme
	styles Styles
	ready  bool
}

// New creates a preview of doc. The title is shown in the header line.
func New(doc docconv.Document, title string, theme docconv.Theme) Model {
	return Model{
		doc:    doc,
		title:  title,
		theme:  theme,
		styles: NewStyles(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.Viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.Viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	headerHeight := 1
	statusHeight := 1
	vpHeight := max(msg.Height-headerHeight-statusHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	// Re-wrap at the new width.
	m.Viewport.SetContent(m.renderContent())
	return m
}

func (m Model) renderContent() string {
	return ansi.Render(m.doc, m.Viewport.Width, m.theme)
}

func (m Model) header() string {
	title := m.title
	if title == "" {
		title = "Untitled"
	}
	return m.styles.Title.Render(runewidth.Truncate(title, m.Viewport.Width, "…"))
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%d blocks  %3.f%%  q to quit",
		m.doc.Len(), m.Viewport.ScrollPercent()*100)
	return m.styles.Muted.Render(runewidth.Truncate(status, m.Viewport.Width, "…"))
}
