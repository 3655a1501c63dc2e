// Package viewer is a scrollable terminal pager for rendered reports.
package viewer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Page is one report shown in the viewer.
type Page struct {
	Title   string
	Content string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Padding(0, 1)
	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// chromeHeight is the number of lines used by the tab bar and status bar.
const chromeHeight = 3

// Run opens the viewer on in/out and blocks until the user quits or ctx ends.
func Run(ctx context.Context, pages []Page, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(newModel(pages),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

type model struct {
	pages    []Page
	current  int
	viewport viewport.Model
	ready    bool
	width    int
}

func newModel(pages []Page) model {
	if len(pages) == 0 {
		pages = []Page{{Title: "empty", Content: "Nothing to show."}}
	}
	return model{pages: pages, viewport: viewport.New(0, 0)}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.show((m.current + 1) % len(m.pages))
			return m, nil
		case "shift+tab", "left", "h":
			m.show((m.current - 1 + len(m.pages)) % len(m.pages))
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.show(m.current)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// show switches to page i and scrolls to its top.
func (m *model) show(i int) {
	m.current = i
	m.viewport.SetContent(m.pages[i].Content)
	m.viewport.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.current {
			tabs[i] = activeTab.Render(p.Title)
		} else {
			tabs[i] = tabStyle.Render(p.Title)
		}
	}
	header := titleStyle.Render("sarifmd") + " " + strings.Join(tabs, "")
	status := statusStyle.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • tab switch • g/G top/bottom • q quit",
		m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), status)
}
