package reportCommand

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/sysprobe/internal/config"
	"github.com/redjax/sysprobe/internal/utils/spinner"
	"github.com/redjax/sysprobe/pkg/sysprobe"
	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

func NewReportCommand() *cobra.Command {
	var (
		sections []string
		all      bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collect and print a system report",
		Long: `Collects hardware and operating system information and prints it
as JSON or as tables.

Sections are opt-in. Pass --section with a section name to include it;
section names cover their children, so --section hardware includes the
processor, memory, disks, network and sensor groups.

Available sections:
  ` + strings.Join(report.Keys(), "\n  "),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			cfg := resolveSections(sections, all)

			si := sysprobe.New()

			stopSpinner := spinner.Start("Collecting system report")
			doc, err := si.ToDocument(ctx, cfg)
			stopSpinner()
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "json":
				out, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			case "table":
				RenderDocument(cmd.OutOrStdout(), doc)
			default:
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&sections, "section", "s", nil, "Section to include (repeatable, e.g. --section hardware.memory)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include every section")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or table")

	return cmd
}

// resolveSections turns the CLI flags into a projection config. Precedence:
// --all, then --section flags, then report.sections from the config file or
// environment, then everything.
func resolveSections(sections []string, all bool) report.Config {
	if all {
		return report.Full()
	}

	if len(sections) > 0 {
		var keys []string
		for _, section := range sections {
			section = strings.TrimSpace(section)
			if section == "" {
				continue
			}
			keys = append(keys, report.Expand(section)...)
		}
		return report.Enable(keys...)
	}

	if cfg := config.ReportSections(); cfg != nil {
		return cfg
	}

	return report.Full()
}
