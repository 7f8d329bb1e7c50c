package netCommand

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	netservice "github.com/redjax/sysprobe/internal/services/netService"
	utils "github.com/redjax/sysprobe/internal/utils/convert"
	"github.com/redjax/sysprobe/pkg/sysprobe"
)

func NewNetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show network interfaces and probe reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return printNetworkSummary(ctx, cmd)
		},
	}

	cmd.AddCommand(newCheckCommand())

	return cmd
}

func printNetworkSummary(ctx context.Context, cmd *cobra.Command) error {
	si := sysprobe.New()
	hw, err := si.Hardware(ctx)
	if err != nil {
		return err
	}

	ifs, err := hw.NetworkInterfaces(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Interface", "MAC", "MTU", "Addresses", "Sent", "Received"})
	for _, nic := range ifs {
		t.AppendRow(table.Row{
			nic.Name,
			nic.MAC,
			nic.MTU,
			strings.Join(nic.Addresses, "\n"),
			utils.BytesToHumanReadable(nic.BytesSent),
			utils.BytesToHumanReadable(nic.BytesReceived),
		})
	}
	t.Render()

	if gw, err := hw.DefaultGateway(ctx); err == nil {
		fmt.Printf("Default gateway: %s\n", gw)
	} else {
		fmt.Printf("Default gateway: unknown (%v)\n", err)
	}

	return nil
}

func newCheckCommand() *cobra.Command {
	var (
		count      int
		interval   int
		privileged bool
	)

	cmd := &cobra.Command{
		Use:   "check [target]",
		Short: "Probe a host with ICMP echo requests. Without a target, probes the default gateway.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			var target string
			if len(args) > 0 {
				target = args[0]
			} else {
				si := sysprobe.New()
				hw, err := si.Hardware(ctx)
				if err != nil {
					return err
				}
				gw, err := hw.DefaultGateway(ctx)
				if err != nil {
					return fmt.Errorf("no target given and no default gateway found: %w", err)
				}
				target = gw
			}

			fmt.Printf("Probing %s (%d echo requests)...\n", target, count)

			result, err := netservice.Probe(ctx, netservice.Options{
				Target:     target,
				Count:      count,
				Interval:   time.Duration(interval) * time.Second,
				Privileged: privileged,
			})
			if err != nil {
				return err
			}

			printProbeResult(cmd, result)

			if !result.Reachable() {
				return fmt.Errorf("%s is unreachable", target)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 4, "Number of echo requests to send")
	cmd.Flags().IntVarP(&interval, "interval", "i", 1, "Seconds between echo requests")
	cmd.Flags().BoolVar(&privileged, "privileged", false, "Send raw ICMP packets (needs elevation)")

	return cmd
}

func printProbeResult(cmd *cobra.Command, result *netservice.ProbeResult) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("Probe %s (%s)", result.Target, result.Addr))
	t.AppendRow(table.Row{"Sent", result.Sent})
	t.AppendRow(table.Row{"Received", result.Received})
	t.AppendRow(table.Row{"Loss", fmt.Sprintf("%.1f%%", result.LossPercent)})
	if result.Received > 0 {
		t.AppendRow(table.Row{"Min RTT", result.MinRTT})
		t.AppendRow(table.Row{"Avg RTT", result.AvgRTT})
		t.AppendRow(table.Row{"Max RTT", result.MaxRTT})
	}
	t.Render()
}
