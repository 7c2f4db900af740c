package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"presence/internal/platform/config"
	"presence/internal/platform/httpserver"
	"presence/internal/platform/logger"
	"presence/internal/platform/otel"
)

var rootCmd = &cobra.Command{
	Use:          "presence",
	Short:        "Biometric and geofenced office attendance",
	SilenceUsage: true,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive attendance shell on stdin",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd, distanceCmd)
	rootCmd.RunE = runShell
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// runShell wires the services, starts the optional ops listener, and runs the
// shell until stdin closes or the process is signalled.
func runShell(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cmd.ErrOrStderr())

	ctx := cmd.Context()
	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	g, gctx := errgroup.WithContext(ctx)
	shellCtx, shellDone := context.WithCancel(gctx)

	if cfg.Ops.Addr != "" {
		srv := httpserver.New(cfg.Ops.Addr, httpserver.NewOpsRouter(log, a.registry, a.checks))
		g.Go(func() error {
			log.Info("ops listener started", "addr", cfg.Ops.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops listener: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-shellCtx.Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(stopCtx)
		})
	}

	g.Go(func() error {
		defer shellDone()
		return newShell(a, cmd.OutOrStdout()).Run(shellCtx, cmd.InOrStdin())
	})

	return g.Wait()
}
