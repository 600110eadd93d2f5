package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionInput(t *testing.T) {
	in := NewQuestionInput(nil)

	require.NotNil(t, in)
	assert.Empty(t, in.Value())
	assert.True(t, in.Focused())
}

func TestQuestionInput_SetValue(t *testing.T) {
	in := NewQuestionInput(nil)

	in.SetValue("how do I file expenses?")

	assert.Equal(t, "how do I file expenses?", in.Value())
}

func TestQuestionInput_FocusBlur(t *testing.T) {
	in := NewQuestionInput(nil)

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestQuestionInput_Update_Typing(t *testing.T) {
	in := NewQuestionInput(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}
	in, _ = in.Update(msg)

	assert.Equal(t, "hi", in.Value())
}

func TestQuestionInput_SetWidth(t *testing.T) {
	in := NewQuestionInput(nil)

	in.SetWidth(100)
	assert.Equal(t, 100, in.Width())

	// Narrow terminals keep a usable minimum
	in.SetWidth(10)
	assert.Equal(t, 10, in.Width())
}

func TestQuestionInput_Reset(t *testing.T) {
	in := NewQuestionInput(nil)
	in.SetValue("something")

	in.Reset()

	assert.Empty(t, in.Value())
}
