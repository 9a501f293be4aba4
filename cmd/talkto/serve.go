package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/talkto/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the representatives, trending and organization endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	repsService, err := newRepsService(context.Background(), cfg)
	if err != nil {
		return err
	}

	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("failed to load organization directory: %w", err)
	}

	if !cfg.HasCongressKey() {
		log.Printf("[server] CONGRESS_API_KEY not set; /api/trending will return errors")
	}
	log.Printf("[server] representatives provider: %s", cfg.Provider)

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		Reps:           repsService,
		Trends:         newTrendsAggregator(cfg),
		Activity:       newActivityService(cfg),
		Directory:      dir,
		AllowedOrigins: cfg.AllowedOrigins,
		ActivityMaxAge: cfg.CacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
