package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/yetobasi/homepage/internal/analytics"
	"github.com/yetobasi/homepage/internal/config"
	"github.com/yetobasi/homepage/internal/content"
	"github.com/yetobasi/homepage/internal/logging"
	"github.com/yetobasi/homepage/internal/web"
)

const (
	sweepInterval   = time.Minute
	cleanupInterval = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the homepage server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		gin.SetMode(cfg.Mode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	site := content.Load()
	sessions := web.NewRegistry(site)

	var store *analytics.Store
	if cfg.Tracking {
		var err error
		if store, err = analytics.Open(cfg.DBPath); err != nil {
			return fmt.Errorf("opening analytics store: %w", err)
		}
		defer store.Close()
		log.Info("visitor tracking enabled with hashed IP addresses", "db", cfg.DBPath)
		go runCleanup(ctx, store, cfg.Retention, log)
	}

	admin := web.Admin{}
	if user, pass, ok := cfg.AdminCredentials(); ok {
		admin = web.Admin{Enabled: true, Username: user, Password: pass}
		if cfg.AdminPassword == "" {
			log.Warn("using default admin password; set HOMEPAGE_ADMIN_PASSWORD")
		}
	} else if cfg.Tracking {
		log.Info("admin area disabled: no admin password configured")
	}

	srv, err := web.New(web.Options{
		Site:             site,
		Sessions:         sessions,
		Store:            store,
		Admin:            admin,
		AutoplayInterval: cfg.AutoplayInterval,
		Retention:        cfg.Retention,
		ImagesDir:        cfg.ImagesDir,
		Logger:           log,
	})
	if err != nil {
		return err
	}

	go sessions.Run(ctx, sweepInterval, cfg.SessionTTL)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// photo streams end when the server context does
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", httpSrv.Addr, "mode", cfg.Mode)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// runCleanup deletes visitor rows past the retention window at startup and
// then daily.
func runCleanup(ctx context.Context, store *analytics.Store, retention time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		n, err := store.Cleanup(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Error("privacy cleanup", "error", err)
		case n > 0:
			log.Info("privacy cleanup removed old visitor records", "count", n)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
