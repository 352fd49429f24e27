package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"drift-detector/core/config"
	"drift-detector/core/logger"
	"drift-detector/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd serves the latest generated report over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the latest drift report over HTTP",
	Long: `Serve starts a small HTTP server exposing the most recent report
from the configured output directory:

  GET /            HTML report page
  GET /api/report  raw report JSON

A fresh compare run shows up without restarting the server.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&outDir, "out", "", "Report directory to serve (default from config)")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	if outDir == "" {
		outDir = cfg.Report.OutputDir
	}

	app := server.New(outDir, l)

	go func() {
		l.Info("Starting report server",
			zap.String("port", cfg.Server.Port),
			zap.String("reports", outDir),
		)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	l.Info("Shutting down server...")
	return app.Shutdown()
}
