package historyCommand

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	historyservice "github.com/redjax/sysprobe/internal/services/historyService"
	"github.com/redjax/sysprobe/internal/utils/path"
	"github.com/redjax/sysprobe/internal/utils/spinner"
	"github.com/redjax/sysprobe/internal/utils/strutils"
	"github.com/redjax/sysprobe/pkg/sysprobe"
	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

const defaultDBPath = "~/.sysprobe/history.db"

func NewHistoryCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Record and browse system report snapshots",
		Long: `Maintains a local database of system report snapshots so reports
can be compared over time. Snapshots are full reports stored as JSON.`,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath, "Path to the snapshot database")

	cmd.AddCommand(newRecordCommand(&dbPath))
	cmd.AddCommand(newListCommand(&dbPath))
	cmd.AddCommand(newShowCommand(&dbPath))
	cmd.AddCommand(newPruneCommand(&dbPath))

	return cmd
}

// openService expands the --db path, creates its parent directory and opens
// the snapshot store.
func openService(dbPath string) (*historyservice.HistoryService, error) {
	expanded, err := path.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("bad database path: %w", err)
	}

	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return historyservice.NewHistoryService(expanded)
}

func newRecordCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Collect a full report and store it as a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, err := openService(*dbPath)
			if err != nil {
				return err
			}
			defer svc.Close()

			si := sysprobe.New()

			stopSpinner := spinner.Start("Collecting snapshot")
			doc, err := si.ToDocument(ctx, report.Full())
			stopSpinner()
			if err != nil {
				return err
			}

			body, err := json.Marshal(doc)
			if err != nil {
				return err
			}

			hostname, _ := os.Hostname()
			snap := historyservice.Snapshot{
				ID:       uuid.NewString(),
				TakenAt:  time.Now(),
				Platform: si.Platform().String(),
				Hostname: hostname,
				Report:   body,
			}

			if err := svc.Record(ctx, snap); err != nil {
				return err
			}

			fmt.Printf("Recorded snapshot %s\n", snap.ID)
			return nil
		},
	}
}

func newListCommand(dbPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, err := openService(*dbPath)
			if err != nil {
				return err
			}
			defer svc.Close()

			snaps, err := svc.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Println("No snapshots recorded yet.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Taken At", "Platform", "Hostname"})
			for _, snap := range snaps {
				t.AppendRow(table.Row{
					snap.ID,
					snap.TakenAt.Local().Format(time.RFC3339),
					strutils.ToTitleCase(snap.Platform),
					snap.Hostname,
				})
			}
			t.Render()

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum snapshots to list (0 = all)")

	return cmd
}

func newShowCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a snapshot's report as JSON. The id may be a unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, err := openService(*dbPath)
			if err != nil {
				return err
			}
			defer svc.Close()

			snap, err := svc.Get(ctx, args[0])
			if err != nil {
				return err
			}

			// Indent the raw bytes instead of round-tripping through a map,
			// which would scramble field order.
			var buf bytes.Buffer
			if err := json.Indent(&buf, snap.Report, "", "  "); err != nil {
				return fmt.Errorf("snapshot %s contains invalid JSON: %w", snap.ID, err)
			}

			fmt.Printf("# %s taken %s on %s\n", snap.ID, snap.TakenAt.Local().Format(time.RFC3339), snap.Hostname)
			fmt.Println(buf.String())
			return nil
		},
	}
}

func newPruneCommand(dbPath *string) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old snapshots, keeping the newest N",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, err := openService(*dbPath)
			if err != nil {
				return err
			}
			defer svc.Close()

			removed, err := svc.Prune(ctx, keep)
			if err != nil {
				return err
			}

			fmt.Printf("Removed %d snapshot(s), kept the newest %d\n", removed, keep)
			return nil
		},
	}

	cmd.Flags().IntVarP(&keep, "keep", "k", 10, "Number of snapshots to keep")

	return cmd
}
