package serveCommand

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redjax/sysprobe/internal/server"
	"github.com/redjax/sysprobe/pkg/sysprobe"
)

func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve system reports over HTTP",
		Long: `Starts an HTTP server exposing the system report API:

  GET /healthz             liveness check
  GET /api/v1/platform     detected platform
  GET /api/v1/report       full report, or ?sections=platform,hardware.memory

The server runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(sysprobe.New())
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")

	return cmd
}
