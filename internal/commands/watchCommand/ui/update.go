package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m UIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.gatherCmd()
			}
		case "r":
			return m, m.gatherCmd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Resize(msg)
		m.resizeGauges()
		if m.haveStats {
			m.procTable = m.buildProcessTable()
		}
		return m, nil

	case statsMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = ""
			m.stats = msg
			m.haveStats = true
			m.procTable = m.buildProcessTable()
		}
		if m.paused {
			return m, nil
		}
		return m, m.tickCmd()

	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, m.gatherCmd()
	}

	return m, nil
}

func (m *UIModel) resizeGauges() {
	width := m.viewport.ContentWidth() - 20
	if width < 20 {
		width = 20
	}
	if width > 80 {
		width = 80
	}
	m.cpuGauge.Width = width
	m.memGauge.Width = width
	m.swapGauge.Width = width
}
