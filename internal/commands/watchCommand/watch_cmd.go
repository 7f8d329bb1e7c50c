package watchCommand

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/redjax/sysprobe/internal/commands/watchCommand/ui"
	"github.com/redjax/sysprobe/pkg/sysprobe"
)

func NewWatchCommand() *cobra.Command {
	var (
		interval  int
		processes int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live dashboard with CPU/memory gauges and the busiest processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval < 1 {
				interval = 1
			}
			if processes < 1 {
				processes = 1
			}

			model := ui.NewUIModel(sysprobe.New(), time.Duration(interval)*time.Second, processes)

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&interval, "interval", "i", 2, "Refresh interval in seconds")
	cmd.Flags().IntVarP(&processes, "processes", "p", 10, "Number of processes to show")

	return cmd
}
