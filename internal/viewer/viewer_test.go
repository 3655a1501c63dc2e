package viewer

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func sized(t *testing.T, pages []Page) model {
	t.Helper()
	next, _ := newModel(pages).Update(tea.WindowSizeMsg{Width: 80, Height: 13})
	m, ok := next.(model)
	require.True(t, ok)
	return m
}

func press(m model, key string) model {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(model)
}

func TestModel_LoadingUntilSized(t *testing.T) {
	assert.Equal(t, "Loading...", newModel(nil).View())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		t.Run(key, func(t *testing.T) {
			var msg tea.KeyMsg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}
			_, cmd := sized(t, nil).Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_ScrollAndJump(t *testing.T) {
	m := sized(t, []Page{{Title: "Code Scan", Content: longContent(100)}})
	assert.Equal(t, 0, m.viewport.YOffset)

	m = press(m, "j")
	assert.Equal(t, 1, m.viewport.YOffset)

	m = press(m, "G")
	assert.True(t, m.viewport.AtBottom())

	m = press(m, "g")
	assert.True(t, m.viewport.AtTop())
}

func TestModel_TabSwitchesPagesAndResetsScroll(t *testing.T) {
	m := sized(t, []Page{
		{Title: "Code Scan", Content: longContent(50)},
		{Title: "Container Scan", Content: "only line"},
	})
	m = press(m, "G")
	m = press(m, "tab")
	assert.Equal(t, 1, m.current)
	assert.True(t, m.viewport.AtTop())
	assert.Contains(t, m.View(), "only line")

	m = press(m, "tab")
	assert.Equal(t, 0, m.current)
	m = press(m, "shift+tab")
	assert.Equal(t, 1, m.current)
}

func TestModel_ViewShowsTabsAndStatus(t *testing.T) {
	m := sized(t, []Page{{Title: "Code Scan", Content: "x"}, {Title: "Container Scan", Content: "y"}})
	view := m.View()
	assert.Contains(t, view, "Code Scan")
	assert.Contains(t, view, "Container Scan")
	assert.Contains(t, view, "q quit")
}
