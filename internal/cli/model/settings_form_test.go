package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/cli/styles"
	"github.com/bnema/duopane/internal/domain/entity"
)

func newTestForm(t *testing.T, save func(context.Context, entity.Settings) error) SettingsFormModel {
	t.Helper()
	initial := entity.DefaultSettings()
	initial.SideAURL = "https://mail.example"
	return NewSettingsFormModel(context.Background(), styles.NewTheme(""), SettingsFormConfig{
		Initial: initial,
		Save:    save,
	})
}

func press(t *testing.T, m SettingsFormModel, msgs ...tea.Msg) (SettingsFormModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SettingsFormModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSettingsForm_PrefillsFields(t *testing.T) {
	m := newTestForm(t, nil)

	assert.Equal(t, "https://mail.example", m.inputs[0].Value())
	assert.Equal(t, "", m.inputs[1].Value())
	assert.Equal(t, "50", m.inputs[2].Value())
	assert.Equal(t, entity.DefaultDividerColor, m.inputs[3].Value())
	assert.Contains(t, m.View(), "Swap sides")
}

func TestSettingsForm_EditSwapAndSave(t *testing.T) {
	var saved []entity.Settings
	m := newTestForm(t, func(_ context.Context, s entity.Settings) error {
		saved = append(saved, s)
		return nil
	})

	// Fill side B, then tab to the checkbox and toggle it.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("https://chat.example"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.onCheckbox())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.True(t, m.swapped)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, quit := press(t, m, cmd())

	require.Len(t, saved, 1)
	assert.Equal(t, "https://chat.example", saved[0].SideBURL)
	assert.True(t, saved[0].Swapped)
	assert.True(t, m.Saved())
	assert.Equal(t, saved[0], m.Result())
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestSettingsForm_InvalidColorBlocksSave(t *testing.T) {
	m := newTestForm(t, func(context.Context, entity.Settings) error {
		t.Fatal("save must not be called")
		return nil
	})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 3, m.focus)
	m.inputs[3].SetValue("not a color!")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "divider_color")
}

func TestSettingsForm_RatioIsClamped(t *testing.T) {
	var saved entity.Settings
	m := newTestForm(t, func(_ context.Context, s entity.Settings) error {
		saved = s
		return nil
	})
	m.inputs[2].SetValue("150")

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, entity.MaxSplitRatio, saved.SplitRatio)
}

func TestSettingsForm_SaveErrorKeepsFormOpen(t *testing.T) {
	m := newTestForm(t, func(context.Context, entity.Settings) error {
		return errors.New("disk full")
	})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, quit := press(t, m, cmd())

	assert.Nil(t, quit)
	assert.False(t, m.Saved())
	assert.EqualError(t, m.Err(), "disk full")
}

func TestSettingsForm_EscAborts(t *testing.T) {
	m := newTestForm(t, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Aborted())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
