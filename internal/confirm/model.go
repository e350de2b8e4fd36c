// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const hint = "Continue? [y/N]"

type keyMap struct {
	Yes   key.Binding
	No    key.Binding
	Abort key.Binding
}

var keys = keyMap{
	Yes:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:    key.NewBinding(key.WithKeys("n", "N", "enter", "esc"), key.WithHelp("n", "no")),
	Abort: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	yesStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D75F00"))
	noStyle     = lipgloss.NewStyle().Faint(true)
)

// model is a one-key yes/no prompt.
type model struct {
	prompt  string
	done    bool
	yes     bool
	aborted bool
}

func newModel(prompt string) model {
	return model{prompt: prompt}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, keys.Abort):
		m.done, m.aborted = true, true
	case key.Matches(km, keys.Yes):
		m.done, m.yes = true, true
	case key.Matches(km, keys.No):
		m.done = true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m model) View() string {
	head := promptStyle.Render(m.prompt) + "\n" + hint + " "
	if !m.done {
		return head
	}
	switch {
	case m.aborted:
		return head + noStyle.Render("aborted") + "\n"
	case m.yes:
		return head + yesStyle.Render("yes") + "\n"
	}
	return head + noStyle.Render("no") + "\n"
}
