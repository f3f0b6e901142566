package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/pact/internal/logging"
	"github.com/vango-dev/pact/pkg/devtools"
	"github.com/vango-dev/pact/pkg/middleware"
	"github.com/vango-dev/pact/pkg/runtime"
	"github.com/vango-dev/pact/pkg/snapshot"
)

func devtoolsCmd(configPath *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "devtools",
		Short: "Serve the demo application with devtools",
		Long: `Mount the demo application and serve it over HTTP.

Routes:
  GET  /tree       live tree markup
  GET  /tree.json  live tree structure
  POST /dispatch   fire an event (path, event, value form fields)
  GET  /history    recent pass reports
  GET  /ws         websocket stream of pass reports
  GET  /metrics    Prometheus pass metrics

Snapshots are recorded when the config names a directory or bucket.

Examples:
  pact devtools
  pact devtools --port=8080
  pact devtools --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Devtools.Port = port
			}
			if host != "" {
				cfg.Devtools.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := logging.New(cfg)

			registry := prometheus.NewRegistry()
			metrics := middleware.NewMetrics(
				middleware.WithRegistry(registry),
				middleware.WithNamespace(cfg.Metrics.Namespace),
				middleware.WithSubsystem(cfg.Metrics.Subsystem),
			)
			srv := devtools.New(devtools.WithGatherer(registry), devtools.WithLogger(logger))

			mw := []runtime.Middleware{middleware.Tracing(), metrics.Middleware(), srv.Middleware()}
			store, err := snapshot.FromConfig(cfg.Snapshots)
			if err != nil {
				return err
			}
			if store != nil {
				mw = append(mw, snapshot.NewRecorder(store, snapshot.WithLogger(logger)).Middleware())
			}

			s, err := mountDemo(cfg, logger, mw...)
			if err != nil {
				return err
			}
			defer s.root.Unmount()
			srv.Attach(s.root)

			printBanner()
			fmt.Println("  devtools")
			fmt.Println()
			success("Demo mounted")
			info("Tree:    http://%s/tree", cfg.DevtoolsAddress())
			info("Stream:  ws://%s/ws", cfg.DevtoolsAddress())
			info("Metrics: http://%s/metrics", cfg.DevtoolsAddress())
			if store == nil {
				warn("Snapshots disabled (set snapshots.dir or snapshots.bucket)")
			}
			fmt.Println()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, cfg.DevtoolsAddress())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}
