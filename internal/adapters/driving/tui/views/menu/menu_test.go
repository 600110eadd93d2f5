package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intramate/intramate-cli/internal/adapters/driving/tui/messages"
	"github.com/intramate/intramate-cli/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.items, 4)
	assert.Equal(t, 0, view.selected)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_Navigation(t *testing.T) {
	view := NewView(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(msg)
	assert.Equal(t, 1, view.Selected())

	view.Update(msg)
	view.Update(msg)
	assert.Equal(t, 3, view.Selected())

	// Boundary - can't go past last item
	view.Update(msg)
	assert.Equal(t, 3, view.Selected())

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(up)
	assert.Equal(t, 2, view.Selected())
}

func TestView_Update_Enter_ViewChange(t *testing.T) {
	view := NewView(nil)
	view.selected = 0 // Chat

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	result := cmd()
	changed, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewChat, changed.View)
}

func TestView_Update_Enter_Documents(t *testing.T) {
	view := NewView(nil)
	view.selected = 1 // Documents

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	result := cmd()
	changed, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDocuments, changed.View)
}

func TestView_Update_Enter_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 3 // Quit

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "IntraMate")
	assert.Contains(t, output, "Ask your documents")
	assert.Contains(t, output, "Chat")
	assert.Contains(t, output, "Documents")
	assert.Contains(t, output, "Quit")
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Contains(t, view.View(), "Initialising")
}

func TestMenuItem_Properties(t *testing.T) {
	view := NewView(nil)

	assert.Equal(t, "Chat", view.items[0].Label)
	assert.Equal(t, messages.ViewChat, view.items[0].View)

	assert.Equal(t, "Documents", view.items[1].Label)
	assert.Equal(t, messages.ViewDocuments, view.items[1].View)

	assert.Equal(t, "Help", view.items[2].Label)
	assert.Equal(t, messages.ViewHelp, view.items[2].View)

	assert.Equal(t, "Quit", view.items[3].Label)
	assert.True(t, view.items[3].Quit)
}
