package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	utils "github.com/redjax/sysprobe/internal/utils/convert"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

func (m UIModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("sysprobe watch [%s]", m.si.Platform())
	if m.paused {
		title += " (paused)"
	}
	b.WriteString(m.viewport.FitTitle(titleStyle).Render(title))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	if !m.haveStats {
		b.WriteString("\nGathering first sample...\n")
		return b.String()
	}

	b.WriteString(m.viewport.FitSection(sectionStyle).Render(m.viewGauges()))
	b.WriteString("\n")

	if len(m.stats.processes) > 0 {
		b.WriteString(m.viewport.FitSection(sectionStyle).Render(
			labelStyle.Render("Top processes") + "\n" + m.procTable.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.HelpLine(
		"q: quit | p: pause | r: refresh", helpStyle))

	return m.viewport.ClampHeight(b.String())
}

func (m UIModel) viewGauges() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s %5.1f%%\n",
		labelStyle.Render("CPU "),
		m.cpuGauge.ViewAs(m.stats.cpuLoad/100),
		m.stats.cpuLoad))

	if mem := m.stats.memory; mem != nil {
		b.WriteString(fmt.Sprintf("%s %s %5.1f%%  (%s / %s)\n",
			labelStyle.Render("Mem "),
			m.memGauge.ViewAs(mem.UsedPercent/100),
			mem.UsedPercent,
			utils.BytesToHumanReadable(mem.Used),
			utils.BytesToHumanReadable(mem.Total)))

		if mem.SwapTotal > 0 {
			b.WriteString(fmt.Sprintf("%s %s %5.1f%%  (%s / %s)\n",
				labelStyle.Render("Swap"),
				m.swapGauge.ViewAs(mem.SwapUsedPercent/100),
				mem.SwapUsedPercent,
				utils.BytesToHumanReadable(mem.SwapUsed),
				utils.BytesToHumanReadable(mem.SwapTotal)))
		}
	}

	b.WriteString(fmt.Sprintf("\nUptime: %s  |  Cores: %d  |  Sampled: %s",
		m.stats.uptime,
		len(m.stats.perCore),
		m.stats.takenAt.Format("15:04:05")))

	return b.String()
}
