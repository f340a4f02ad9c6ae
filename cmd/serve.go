package cmd

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
	"go.uber.org/zap"

	"github.com/blackstone-contractors/website/internal/contact"
	"github.com/blackstone-contractors/website/internal/content"
	"github.com/blackstone-contractors/website/internal/db"
	"github.com/blackstone-contractors/website/internal/gallery"
	"github.com/blackstone-contractors/website/internal/server"
	"github.com/blackstone-contractors/website/internal/site"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website over HTTP",
	Long: `Starts the HTTP server with every page, the live gallery endpoint,
the contact form API and the site search. Contact inquiries are stored in
sqlite when contact.store_inquiries is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("host") {
			cfg.Server.Host = serveHost
		}

		var database *db.DB
		var store *contact.Store
		if cfg.Contact.StoreInquiries {
			var err error
			database, err = openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close()
			store = contact.NewStore(database)
		}
		intake := contact.NewIntake(store, logger)

		s, err := buildSite(cfg, false, intake)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Host:     cfg.Server.Host,
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, database, logger)

		r := srv.Router()
		gallery.RegisterRoutes(r, content.Catalog(), logger)
		contact.RegisterRoutes(r, intake, logger)
		site.RegisterRoutes(r, s)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
			}
		}()

		fields := []zap.Field{
			zap.String("version", Version),
			zap.String("base_url", cfg.BaseURL),
			zap.Bool("store_inquiries", cfg.Contact.StoreInquiries),
		}
		if database != nil {
			fields = append(fields, zap.String("database", database.Path()))
		}
		logger.Info("starting blackstone site", fields...)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Interface to bind (overrides server.host)")
	rootCmd.AddCommand(serveCmd)
}
