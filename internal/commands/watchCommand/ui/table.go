package ui

import (
	"fmt"

	t "github.com/evertras/bubble-table/table"

	utils "github.com/redjax/sysprobe/internal/utils/convert"
)

const (
	colPID  = "pid"
	colName = "name"
	colUser = "user"
	colCPU  = "cpu"
	colMem  = "mem"
	colRSS  = "rss"
)

func (m UIModel) buildProcessTable() t.Model {
	if len(m.stats.processes) == 0 {
		return t.New(nil)
	}

	// widths
	nameWidth := m.viewport.ContentWidth() - (8 + 12 + 8 + 8 + 10)
	if nameWidth < 12 {
		nameWidth = 12
	}

	cols := []t.Column{
		t.NewColumn(colPID, "PID", 8),
		t.NewColumn(colName, "Name", nameWidth),
		t.NewColumn(colUser, "User", 12),
		t.NewColumn(colCPU, "CPU%", 8),
		t.NewColumn(colMem, "Mem%", 8),
		t.NewColumn(colRSS, "Resident", 10),
	}

	var rows []t.Row
	for _, p := range m.stats.processes {
		rows = append(rows, t.NewRow(t.RowData{
			colPID:  fmt.Sprintf("%d", p.PID),
			colName: p.Name,
			colUser: p.User,
			colCPU:  fmt.Sprintf("%.1f", p.CPUPercent),
			colMem:  fmt.Sprintf("%.1f", p.MemoryPercent),
			colRSS:  utils.BytesToHumanReadable(p.ResidentBytes),
		}))
	}

	return t.New(cols).WithRows(rows)
}
