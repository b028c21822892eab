// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/duopane/internal/cli/styles"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/settings"
	"github.com/bnema/duopane/internal/logging"
)

type formField struct {
	key   string
	label string
}

// Text fields in display order. The swap checkbox follows them.
var formFields = []formField{
	{key: "side_a_url", label: "Side A URL"},
	{key: "side_b_url", label: "Side B URL"},
	{key: "split_ratio", label: "Split ratio (10-90)"},
	{key: "divider_color", label: "Divider color"},
}

// SettingsFormConfig holds what the settings form edits and where it saves.
type SettingsFormConfig struct {
	Initial entity.Settings
	Save    func(ctx context.Context, s entity.Settings) error
}

// SettingsFormModel edits settings.json from the terminal.
type SettingsFormModel struct {
	help help.Model
	keys styles.SettingsFormKeyMap

	inputs  []textinput.Model
	swapped bool
	focus   int

	initial entity.Settings
	result  entity.Settings
	err     error
	saved   bool
	aborted bool

	ctx   context.Context
	save  func(ctx context.Context, s entity.Settings) error
	theme *styles.Theme
}

type settingsSavedMsg struct {
	settings entity.Settings
	err      error
}

// NewSettingsFormModel creates a form prefilled with cfg.Initial.
func NewSettingsFormModel(ctx context.Context, theme *styles.Theme, cfg SettingsFormConfig) SettingsFormModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		in := styles.NewURLInput(theme, f.label)
		value, _ := settings.Field(cfg.Initial, f.key)
		in.SetValue(value)
		inputs[i] = in
	}
	inputs[0].Focus()

	return SettingsFormModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultSettingsFormKeyMap(),
		inputs:  inputs,
		swapped: cfg.Initial.Swapped,
		initial: cfg.Initial,
		ctx:     ctx,
		save:    cfg.Save,
		theme:   theme,
	}
}

// Init implements tea.Model.
func (SettingsFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SettingsFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.result = msg.settings
		m.saved = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateFocused(msg)
}

func (m SettingsFormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil

	case key.Matches(msg, m.keys.Save):
		s, err := m.collect()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		return m, m.saveCmd(s)

	case m.onCheckbox() && key.Matches(msg, m.keys.Toggle):
		m.swapped = !m.swapped
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m SettingsFormModel) onCheckbox() bool {
	return m.focus == len(m.inputs)
}

func (m SettingsFormModel) moveFocus(delta int) SettingsFormModel {
	stops := len(m.inputs) + 1
	m.focus = ((m.focus+delta)%stops + stops) % stops
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m SettingsFormModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.onCheckbox() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// collect parses every field over the initial record.
func (m SettingsFormModel) collect() (entity.Settings, error) {
	s := m.initial
	for i, f := range formFields {
		var err error
		if s, err = settings.SetField(s, f.key, m.inputs[i].Value()); err != nil {
			return m.initial, err
		}
	}
	s.Swapped = m.swapped
	return s.Normalized(), nil
}

func (m SettingsFormModel) saveCmd(s entity.Settings) tea.Cmd {
	return func() tea.Msg {
		if m.save == nil {
			return settingsSavedMsg{err: fmt.Errorf("saving is not available")}
		}
		logging.FromContext(m.ctx).Debug().Msg("saving settings from terminal form")
		return settingsSavedMsg{settings: s, err: m.save(m.ctx, s)}
	}
}

// Saved reports whether the form was saved successfully.
func (m SettingsFormModel) Saved() bool { return m.saved }

// Aborted reports whether the user left without saving.
func (m SettingsFormModel) Aborted() bool { return m.aborted }

// Result returns the saved record.
func (m SettingsFormModel) Result() entity.Settings { return m.result }

// Err returns the last validation or save error.
func (m SettingsFormModel) Err() error { return m.err }

// View implements tea.Model.
func (m SettingsFormModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("duopane settings"))
	b.WriteString("\n\n")

	for i, f := range formFields {
		label := m.theme.Subtle
		if i == m.focus {
			label = m.theme.Highlight
		}
		b.WriteString(label.Render(f.label))
		b.WriteString("\n")
		b.WriteString(m.theme.InputBox(m.inputs[i].View(), i == m.focus))
		b.WriteString("\n")
	}

	box := styles.IconCheckboxEmpty
	if m.swapped {
		box = styles.IconCheckboxChecked
	}
	checkStyle := m.theme.Normal
	if m.onCheckbox() {
		checkStyle = m.theme.Highlight
	}
	b.WriteString(checkStyle.Render(fmt.Sprintf("%s Swap sides", box)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
