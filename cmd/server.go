package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/akashgh003/gen-ai-asgn/internal/config"
	"github.com/akashgh003/gen-ai-asgn/internal/db"
	"github.com/akashgh003/gen-ai-asgn/internal/prefs"
	"github.com/akashgh003/gen-ai-asgn/internal/server"
	"github.com/akashgh003/gen-ai-asgn/internal/session"
	"github.com/akashgh003/gen-ai-asgn/internal/view"
	"github.com/akashgh003/gen-ai-asgn/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the advisor web UI",
	Long:  `Starts the advisor UI server: the product search page and the fragment routes it calls, backed by the configured product-search API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		port := cfg.Server.Port
		if serverPort != 0 {
			port = serverPort
		}

		// Fails when the page lacks an element the script binds to.
		renderer, err := view.New(view.Options{
			Markdown:   cfg.View.RenderMarkdown,
			LayoutFile: cfg.View.LayoutFile,
		})
		if err != nil {
			return fmt.Errorf("preparing page: %w", err)
		}

		// Open database.
		dbPath := filepath.Join(cfg.DataDir, db.FileName)
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srvCfg := server.Config{
			Port:      port,
			AllowAll:  cfg.Server.AllowAllOrigins,
			RateLimit: cfg.Server.RateLimit,
			RateBurst: cfg.Server.RateBurst,
		}
		if cfg.Server.RateLimit > 0 && cfg.Server.RateStore == config.RateStoreRedis {
			rdb, err := server.NewRedisClient(cmd.Context(), cfg.Server.RedisURL)
			if err != nil {
				return fmt.Errorf("creating redis rate store: %w", err)
			}
			defer rdb.Close()
			srvCfg.Redis = rdb
		}
		srv := server.New(srvCfg)

		controller := web.New(
			newBackendClient(cfg),
			renderer,
			session.NewTracker(),
			prefs.NewStore(database),
			cfg.Server.SecureCookies,
		)
		controller.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("shutdown")
			}
		}()

		fmt.Fprintf(os.Stderr, "advisor server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Backend: %s\n", cfg.Backend.URL)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Rate limit store: %s\n", rateStoreLabel(cfg))

		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func rateStoreLabel(cfg *config.Config) string {
	if cfg.Server.RateLimit <= 0 {
		return "disabled"
	}
	return string(cfg.Server.RateStore)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
