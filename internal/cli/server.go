package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"triviahost/internal/config"
	"triviahost/internal/content"
	"triviahost/internal/domain"
	"triviahost/internal/game"
	"triviahost/internal/infra/memory"
	pgloader "triviahost/internal/infra/postgres"
	redispack "triviahost/internal/infra/redis"
	transport "triviahost/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia host server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = config.Config{}
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.PackLoader = memory.NewStaticPackLoader(builtinPacks())
	if pool != nil {
		loader = pgloader.NewPackLoader(pool)
	}

	packTTL := config.TTLDuration(cfg.Packs.TTL, 10*time.Minute)
	var packs game.PackSource
	if redisClient != nil {
		packs = redispack.NewPackRepository(redisClient, loader, packTTL)
	} else {
		packs = memory.NewPackRepository(loader, packTTL)
	}

	hub := transport.NewHub()
	session := game.NewSession(sessionConfig(cfg), hub, packs, nil)
	wsHandler := transport.NewWSHandler(session, hub)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/import", transport.HandleImport)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("starting trivia host", "port", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sessionConfig maps file config onto the game's tunables, falling back
// to the classic defaults for anything unset.
func sessionConfig(cfg config.Config) game.SessionConfig {
	sc := game.DefaultSessionConfig()
	g := cfg.Game
	if g.BasePoints > 0 {
		sc.Score.BasePoints = g.BasePoints
	}
	if g.TimeMultiplier > 0 {
		sc.Score.TimeMultiplier = g.TimeMultiplier
	}
	if g.StreakBonus > 0 {
		sc.Score.StreakBonus = g.StreakBonus
	}
	if g.QuestionLimit > 0 {
		sc.Round.Limit = g.QuestionLimit
	}
	if g.QuestionTime > 0 {
		sc.Round.BaseTime = g.QuestionTime
	}
	sc.Round.TimeFactor = g.TimeFactor
	sc.Round.CloseUnanswered = g.CloseUnanswered
	sc.StartDelay = config.TTLDuration(g.StartDelay, sc.StartDelay)
	sc.AdminMarkers = g.AdminMarkers
	if cfg.Packs.Default != "" {
		sc.DefaultPack = cfg.Packs.Default
	}
	return sc
}

// builtinPacks exposes the built-in question set as a loadable pack so
// the no-database setup still serves content through the same path.
func builtinPacks() map[string]domain.QuestionPack {
	return map[string]domain.QuestionPack{
		"default": {ID: "default", Questions: content.DefaultQuestions()},
	}
}
