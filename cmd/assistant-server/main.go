package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"makers-assistant/internal/catalog"
	"makers-assistant/internal/chat"
	"makers-assistant/internal/common/config"
	"makers-assistant/internal/common/database"
	"makers-assistant/internal/common/logger"
	"makers-assistant/internal/common/observability"
	"makers-assistant/internal/nlp"
	"makers-assistant/internal/recommend"
	"makers-assistant/internal/server"
	"makers-assistant/pkg/registry"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	log = logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Optional catalog snapshot cache ---
	var cache *catalog.SnapshotCache
	var rdb *database.RedisClient
	if cfg.Catalog.Cache.Enabled {
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			zapLog.Fatal("redis init failed", zap.Error(err))
		}
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = rdb.Ping(pingCtx)
		cancel()
		if err != nil {
			// Cache is an optimization; the data file is the source of truth.
			log.Warn("redis unreachable, catalog cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			cache = catalog.NewSnapshotCache(rdb, cfg.Catalog.Cache.Key, time.Duration(cfg.Catalog.Cache.TTL)*time.Second)
		}
	}

	// --- Catalog snapshot, loaded once and immutable afterwards ---
	inventory, err := catalog.LoadInventory(ctx, cfg.Catalog, cache, log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	provider := catalog.NewProvider(*inventory)

	// --- Vocabulary tables, built once at startup ---
	vocab := registry.Default()
	if cfg.Catalog.VocabularyFile != "" {
		vocab, err = registry.Load(cfg.Catalog.VocabularyFile)
		if err != nil {
			zapLog.Fatal("vocabulary registry load failed", zap.Error(err))
		}
	}

	classifier := nlp.NewClassifier(vocab, nlp.NewSubstringMatcher(), log)
	engine := chat.NewEngine(provider, classifier, vocab, log)
	scorer := recommend.NewScorer(provider, log)

	srv := server.New(cfg.Server, engine, scorer, provider, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server error", zap.Error(err))
		}
	case sig := <-stop:
		log.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	zapLog.Info("assistant server stopped")
}
