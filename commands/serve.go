package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/c360studio/docflow/api"
	"github.com/c360studio/docflow/catalog"
	"github.com/c360studio/docflow/events"
	"github.com/c360studio/docflow/metrics"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		addr     string
		natsURL  string
		watchCat bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation and graph query HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.logger()

			store, _, err := flags.loadCatalog(logger)
			if err != nil {
				return err
			}
			graph, err := flags.loadGraph(logger)
			if err != nil {
				return err
			}
			metrics.SetGraphSize(graph.Report())

			var nc *nats.Conn
			if natsURL != "" {
				nc, err = nats.Connect(natsURL)
				if err != nil {
					return err
				}
				defer nc.Close()
				logger.Info("connected to NATS", slog.String("url", natsURL))
			}
			pub := events.NewPublisher(nc, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watchCat {
				watcher, err := catalog.NewWatcher(store, logger)
				if err != nil {
					return err
				}
				go func() {
					if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
						logger.Warn("catalog watcher stopped", slog.String("error", err.Error()))
					}
				}()
			}

			server := api.New(store, graph, pub, logger)
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start(addr)
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "publish verdict/route events to this NATS server")
	cmd.Flags().BoolVar(&watchCat, "watch-catalog", false, "reload the catalog when its file changes")
	return cmd
}
