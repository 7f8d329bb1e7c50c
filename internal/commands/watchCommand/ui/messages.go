package ui

import (
	"time"

	"github.com/redjax/sysprobe/pkg/sysprobe/hardware"
	"github.com/redjax/sysprobe/pkg/sysprobe/software"
)

// statsMsg carries one dashboard refresh worth of data.
type statsMsg struct {
	takenAt   time.Time
	cpuLoad   float64
	perCore   []float64
	memory    *hardware.MemoryInfo
	processes []software.Process
	uptime    time.Duration

	err error
}

// tickMsg fires when the next refresh is due.
type tickMsg time.Time
