package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	t "github.com/evertras/bubble-table/table"

	"github.com/redjax/sysprobe/internal/utils/terminal"
	"github.com/redjax/sysprobe/pkg/sysprobe"
)

type UIModel struct {
	// facade shared across refreshes so capabilities construct once
	si *sysprobe.SystemInfo

	// refresh cadence and process table depth
	interval time.Duration
	procRows int

	// gauges
	cpuGauge  progress.Model
	memGauge  progress.Model
	swapGauge progress.Model

	// latest sample
	stats     statsMsg
	haveStats bool

	// process table component
	procTable t.Model

	// quick state
	paused bool
	errMsg string

	// terminal size
	viewport *terminal.Viewport
}

func NewUIModel(si *sysprobe.SystemInfo, interval time.Duration, procRows int) UIModel {
	newGauge := func() progress.Model {
		g := progress.New(progress.WithDefaultGradient())
		g.Width = 40
		return g
	}

	return UIModel{
		si:        si,
		interval:  interval,
		procRows:  procRows,
		cpuGauge:  newGauge(),
		memGauge:  newGauge(),
		swapGauge: newGauge(),
		viewport:  terminal.NewViewport(),
	}
}

func (m UIModel) Init() tea.Cmd {
	// collect the first sample right away; ticks take over afterwards
	return m.gatherCmd()
}
