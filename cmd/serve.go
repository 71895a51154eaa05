package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/menubot/internal/bots"
	"github.com/ziadkadry99/menubot/internal/config"
	"github.com/ziadkadry99/menubot/internal/content"
	"github.com/ziadkadry99/menubot/internal/db"
	"github.com/ziadkadry99/menubot/internal/interactions"
	"github.com/ziadkadry99/menubot/internal/logging"
	"github.com/ziadkadry99/menubot/internal/router"
	"github.com/ziadkadry99/menubot/internal/search"
	"github.com/ziadkadry99/menubot/internal/server"
	"github.com/ziadkadry99/menubot/internal/session"
)

const (
	sweepInterval   = 5 * time.Minute
	pruneInterval   = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bot server",
	Long: `Starts the HTTP server with the Telegram webhook, the websocket chat
endpoint and the content, search and interaction APIs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		store := content.NewStore(cfg.ContentFile, log)
		for _, p := range content.Validate(store.Load()) {
			log.Warn("content problem", "action_id", p.ActionID, "problem", p.Message)
		}

		sessions, err := session.Open(session.Options{
			Backend:       string(cfg.Session.Backend),
			TTL:           cfg.SessionTTL(),
			RedisAddr:     cfg.Session.RedisAddr,
			RedisPassword: cfg.Session.RedisPassword,
			RedisDB:       cfg.Session.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("opening session store: %w", err)
		}
		if c, ok := sessions.(io.Closer); ok {
			defer c.Close()
		}

		gatewayOpts := []bots.GatewayOption{bots.WithLogger(log)}
		var interactionStore *interactions.Store
		if cfg.Interactions.Enabled {
			database, err := db.Open(cfg.Interactions.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			interactionStore = interactions.NewStore(database)
			gatewayOpts = append(gatewayOpts, bots.WithRecorder(interactionStore))
		}

		rt := router.New(store, sessions, router.WithPageSize(cfg.PageSize))
		gateway := bots.NewGateway(bots.NewProcessor(rt), gatewayOpts...)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, log)
		registerAllRoutes(srv, cfg, log, gateway, store, interactionStore)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go runMaintenance(ctx, log, sessions, interactionStore, cfg.Retention())

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutting down server", "error", err)
			}
		}()

		log.Info("menubot starting",
			"version", Version,
			"port", cfg.Server.Port,
			"content", cfg.ContentFile,
			"sessions", cfg.Session.Backend,
			"interactions", cfg.Interactions.Enabled,
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func registerAllRoutes(srv *server.Server, cfg *config.Config, log *logging.Logger, gateway *bots.Gateway, store *content.Store, interactionStore *interactions.Store) {
	r := srv.Router()

	// Bots (Telegram & websocket chat)
	telegramOpts := []bots.TelegramOption{bots.WithTelegramLogger(log)}
	if cfg.Telegram.BotToken != "" {
		telegramOpts = append(telegramOpts, bots.WithCallbackAnswerer(bots.NewTelegramClient(cfg.Telegram.BotToken)))
	}
	telegram := bots.NewTelegramHandler(gateway, cfg.Telegram.SecretToken, telegramOpts...)
	chat := bots.NewWebSocketHandler(gateway, log, cfg.Server.AllowAllOrigins)
	bots.RegisterRoutes(r, cfg.Telegram.WebhookPath, telegram, chat)

	// Content admin
	if cfg.AdminToken == "" {
		log.Warn("admin token is empty, content updates are not authenticated")
	}
	content.RegisterRoutes(r, store, cfg.AdminToken)

	search.RegisterRoutes(r, store)

	// Interaction log
	if interactionStore != nil {
		interactions.RegisterRoutes(r, interactionStore)
	}
}

// runMaintenance drops idle in-memory sessions and prunes old interaction
// records until ctx is done.
func runMaintenance(ctx context.Context, log *logging.Logger, sessions session.Store, store *interactions.Store, retention time.Duration) {
	sweep := time.NewTicker(sweepInterval)
	defer sweep.Stop()
	prune := time.NewTicker(pruneInterval)
	defer prune.Stop()

	memory, _ := sessions.(*session.MemoryStore)
	pruneInteractions(ctx, log, store, retention)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sweep.C:
			if memory != nil {
				if n := memory.Sweep(); n > 0 {
					log.Debug("expired sessions dropped", "count", n)
				}
			}
		case <-prune.C:
			pruneInteractions(ctx, log, store, retention)
		}
	}
}

func pruneInteractions(ctx context.Context, log *logging.Logger, store *interactions.Store, retention time.Duration) {
	if store == nil || retention <= 0 {
		return
	}
	n, err := store.DeleteBefore(ctx, time.Now().Add(-retention))
	if err != nil {
		log.Error("pruning interactions", "error", err)
		return
	}
	if n > 0 {
		log.Info("pruned interactions", "count", n)
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
