package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/api"
	"github.com/SeamusWaldron/permcube/internal/moves"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and solver over HTTP",
	Long: `Start an HTTP JSON API:

  GET  /healthz
  GET  /moves
  POST /apply   {"moves": "R U R'"}
  POST /solve   {"scramble": "R U", "max_depth": 5}`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	addr := serveAddr
	if addr == "" {
		addr = appConfig.Server.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(moves.Default(), logger, appConfig.MaxDepth).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
