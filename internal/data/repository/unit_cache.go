package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedUnitRepository reads units through redis. Units are immutable once
// created, so entries only expire by TTL. Redis failures fall back to the
// wrapped repository.
type cachedUnitRepository struct {
	next UnitRepository
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewCachedUnitRepository(next UnitRepository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) UnitRepository {
	return &cachedUnitRepository{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With(zap.String("repository", "unit_cache")),
	}
}

func unitCacheKey(id uuid.UUID) string {
	return "unit:" + id.String()
}

func (c *cachedUnitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	if err := c.next.Create(ctx, unit); err != nil {
		return err
	}
	c.writeCache(ctx, unit)
	return nil
}

func (c *cachedUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	if unit, ok := c.readCache(ctx, id); ok {
		return unit, nil
	}

	unit, err := c.next.FindByID(ctx, id)
	if err != nil || unit == nil {
		return unit, err
	}

	c.writeCache(ctx, unit)
	return unit, nil
}

func (c *cachedUnitRepository) readCache(ctx context.Context, id uuid.UUID) (*entity.Unit, bool) {
	val, err := c.rdb.Get(ctx, unitCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Unit cache read failed", zap.Error(err), zap.String("unit_id", id.String()))
		return nil, false
	}

	var unit entity.Unit
	if err := json.Unmarshal(val, &unit); err != nil {
		c.log.Warn("Unit cache entry corrupt", zap.Error(err), zap.String("unit_id", id.String()))
		return nil, false
	}
	return &unit, true
}

func (c *cachedUnitRepository) writeCache(ctx context.Context, unit *entity.Unit) {
	data, err := json.Marshal(unit)
	if err != nil {
		c.log.Warn("Unit cache encode failed", zap.Error(fmt.Errorf("marshal unit %s: %w", unit.ID, err)))
		return
	}
	if err := c.rdb.Set(ctx, unitCacheKey(unit.ID), data, c.ttl).Err(); err != nil {
		c.log.Warn("Unit cache write failed", zap.Error(err), zap.String("unit_id", unit.ID.String()))
	}
}
