package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cityscope/filmmap/internal/model"
	"github.com/cityscope/filmmap/internal/server"
)

var servePort int

const shutdownTimeout = 5 * time.Second

// shutdownServer stops srv, giving in-flight requests at most grace to finish
// so a hung connection cannot stall process exit.
func shutdownServer(srv *http.Server, grace time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the location data and start the map API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The record set is loaded once before serving. A document-level
		// failure here halts startup: the shell must see "data unavailable"
		// rather than an empty map.
		records, err := newLoader(cfg).Load()
		if err != nil {
			return eris.Wrap(err, "location data unavailable")
		}

		client := newGeocodeClient(cfg)
		if len(cfg.Geocode.WarmQueries) > 0 {
			go func() {
				n := client.Warm(ctx, cfg.Geocode.WarmQueries)
				zap.L().Info("geocode cache warmed",
					zap.Int("resolved", n),
					zap.Int("queries", len(cfg.Geocode.WarmQueries)),
				)
			}()
		}

		srv := server.New(records, client, server.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Viewport:       model.DefaultViewport,
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: srv.Handler(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownServer(httpSrv, shutdownTimeout)
		}()

		zap.L().Info("starting server",
			zap.Int("port", port),
			zap.Int("records", len(records)),
		)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
