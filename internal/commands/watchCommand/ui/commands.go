package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gatherCmd collects one sample off the UI goroutine. Partial failures leave
// their section empty instead of aborting the refresh; only a capability
// construction failure surfaces as msg.err.
func (m UIModel) gatherCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msg := statsMsg{takenAt: time.Now()}

		hw, err := m.si.Hardware(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		osInfo, err := m.si.OperatingSystem(ctx)
		if err != nil {
			msg.err = err
			return msg
		}

		if loads, err := hw.ProcessorLoad(ctx); err == nil && len(loads) > 0 {
			msg.perCore = loads
			sum := 0.0
			for _, l := range loads {
				sum += l
			}
			msg.cpuLoad = sum / float64(len(loads))
		}
		if mem, err := hw.Memory(ctx); err == nil {
			msg.memory = mem
		}
		if procs, err := osInfo.Processes(ctx, m.procRows); err == nil {
			msg.processes = procs
		}
		if up, err := osInfo.Uptime(ctx); err == nil {
			msg.uptime = up
		}

		return msg
	}
}

// tickCmd schedules the next refresh.
func (m UIModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
