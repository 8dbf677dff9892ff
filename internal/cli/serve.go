package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/regbook/regbook/internal/config"
	"github.com/regbook/regbook/internal/server"
)

var (
	serveAddr     string
	serveCatalog  string
	serveDB       string
	serveAuditLog string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "listen", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to catalog overlay YAML")
	serveCmd.Flags().StringVar(&serveDB, "register-db", "", "Path to register SQLite database")
	serveCmd.Flags().StringVar(&serveAuditLog, "audit-log", "", "Path to audit trail JSONL file")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Runs the regbook API: document generation, template catalog,\nform validation and the gifts & hospitality register.\nThe catalog overlay hot-reloads on file change.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if serveCatalog != "" {
		cfg.CatalogPath = serveCatalog
	}
	if serveDB != "" {
		cfg.RegisterDB = serveDB
	}
	if serveAuditLog != "" {
		cfg.AuditLogPath = serveAuditLog
	}

	srv, err := server.New(server.Config{
		ListenAddr:   cfg.ListenAddr,
		CatalogPath:  cfg.CatalogPath,
		RegisterDB:   cfg.RegisterDB,
		AuditLogPath: cfg.AuditLogPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloader, err := server.NewReloader(srv, cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: hot-reload disabled: %v\n", err)
	}
	if reloader != nil {
		go reloader.Run(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	return srv.Serve()
}
