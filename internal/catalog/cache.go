package catalog

import (
	"context"
	"encoding/json"
	"time"

	"makers-assistant/internal/common/config"
	"makers-assistant/internal/common/database"
	apperrors "makers-assistant/internal/common/errors"
	"makers-assistant/internal/common/logger"
)

// SnapshotCache stores the serialized inventory snapshot in redis so that
// restarts and sibling instances can skip re-reading and re-validating the
// data file. The cache is only consulted at load time; the running process
// always serves from its in-memory snapshot.
type SnapshotCache struct {
	redis *database.RedisClient
	key   string
	ttl   time.Duration
}

func NewSnapshotCache(rdb *database.RedisClient, key string, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		redis: rdb,
		key:   key,
		ttl:   ttl,
	}
}

// Load fetches a cached snapshot. A missing key or stale payload is
// reported as an error so the caller falls back to the data file.
func (c *SnapshotCache) Load(ctx context.Context) (*Inventory, error) {
	raw, err := c.redis.Get(ctx, c.key)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCatalogCacheFailed, "catalog snapshot not in cache", err).
			WithRetryable(true)
	}

	var inv Inventory
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeCatalogCacheFailed, "decode cached catalog snapshot", err)
	}

	return &inv, nil
}

// Store writes the snapshot back with the configured TTL.
func (c *SnapshotCache) Store(ctx context.Context, inv *Inventory) error {
	raw, err := json.Marshal(inv)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCatalogCacheFailed, "encode catalog snapshot", err)
	}

	if err := c.redis.Set(ctx, c.key, raw, c.ttl); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCatalogCacheFailed, "store catalog snapshot", err).
			WithRetryable(true)
	}

	return nil
}

// LoadInventory resolves the startup snapshot: cache first when enabled,
// then the validated data file, writing back to the cache best-effort.
// Cache failures are logged and never fatal; the data file is the source
// of truth.
func LoadInventory(ctx context.Context, cfg config.CatalogConfig, cache *SnapshotCache, log logger.Logger) (*Inventory, error) {
	if cache != nil {
		inv, err := cache.Load(ctx)
		if err == nil {
			log.Info("catalog loaded from cache", map[string]interface{}{
				"products": len(inv.Computers) + len(inv.Accessories) + len(inv.Smartphones),
			})
			return inv, nil
		}
		log.Warn("catalog cache miss, loading data file", map[string]interface{}{
			"error": err.Error(),
		})
	}

	inv, err := LoadFile(cfg.DataFile, cfg.SchemaFile)
	if err != nil {
		return nil, err
	}

	log.Info("catalog loaded from data file", map[string]interface{}{
		"file":        cfg.DataFile,
		"computers":   len(inv.Computers),
		"accessories": len(inv.Accessories),
		"smartphones": len(inv.Smartphones),
	})

	if cache != nil {
		if err := cache.Store(ctx, inv); err != nil {
			log.Warn("failed to store catalog snapshot in cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return inv, nil
}
