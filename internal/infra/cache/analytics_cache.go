package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"salespulse/config"
	"salespulse/internal/domain/entity"
	"salespulse/internal/domain/service"
	"salespulse/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	analyticsKeyPrefix = "analytics"
	managersKey        = "managers:list"

	invalidateScanCount = 100
)

// redisAnalyticsCache implements the domain's AnalyticsCache interface with
// JSON values in Redis. Entries are derived data with a TTL; every error is
// reported to the caller, who treats it as a miss.
type redisAnalyticsCache struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewAnalyticsCache is the constructor for redisAnalyticsCache.
func NewAnalyticsCache(client *redis.Client, cfg *config.Config) service.AnalyticsCache {
	return &redisAnalyticsCache{
		client: client,
		cfg:    cfg.Redis,
	}
}

// analyticsKey derives the cache key for one filter combination. The key is
// the prefix plus one fixed-order segment per present filter, so each
// distinct combination gets its own entry.
func analyticsKey(filters entity.DashboardFilters) string {
	var key strings.Builder
	key.WriteString(analyticsKeyPrefix)

	if filters.ManagerID != nil {
		key.WriteString(":mgr:")
		key.WriteString(strconv.FormatInt(*filters.ManagerID, 10))
	}
	if filters.Period != nil {
		key.WriteString(":per:")
		key.WriteString(*filters.Period)
	}
	if filters.Category != nil {
		key.WriteString(":cat:")
		key.WriteString(*filters.Category)
	}

	return key.String()
}

// GetAnalytics returns the cached dashboard for the filter set, or nil on a miss.
func (c *redisAnalyticsCache) GetAnalytics(ctx context.Context, filters entity.DashboardFilters) (*entity.AnalyticsData, error) {
	payload, err := c.client.Get(ctx, analyticsKey(filters)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get analytics cache entry")
	}

	data := new(entity.AnalyticsData)
	if err := json.Unmarshal(payload, data); err != nil {
		return nil, errors.Wrap(err, "failed to decode analytics cache entry")
	}

	return data, nil
}

// SetAnalytics stores the dashboard for the filter set with the analytics TTL.
func (c *redisAnalyticsCache) SetAnalytics(ctx context.Context, filters entity.DashboardFilters, data *entity.AnalyticsData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode analytics cache entry")
	}

	if err := c.client.Set(ctx, analyticsKey(filters), payload, c.cfg.AnalyticsTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to set analytics cache entry")
	}

	return nil
}

// GetManagers returns the cached roster, or nil on a miss.
func (c *redisAnalyticsCache) GetManagers(ctx context.Context) ([]*entity.Manager, error) {
	payload, err := c.client.Get(ctx, managersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get managers cache entry")
	}

	var managers []*entity.Manager
	if err := json.Unmarshal(payload, &managers); err != nil {
		return nil, errors.Wrap(err, "failed to decode managers cache entry")
	}

	return managers, nil
}

// SetManagers stores the roster with the roster TTL.
func (c *redisAnalyticsCache) SetManagers(ctx context.Context, managers []*entity.Manager) error {
	payload, err := json.Marshal(managers)
	if err != nil {
		return errors.Wrap(err, "failed to encode managers cache entry")
	}

	if err := c.client.Set(ctx, managersKey, payload, c.cfg.ManagersTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to set managers cache entry")
	}

	return nil
}

// InvalidateAll evicts every analytics entry and the cached roster. It scans
// instead of KEYS so a large keyspace never blocks the server.
func (c *redisAnalyticsCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, analyticsKeyPrefix+"*", invalidateScanCount).Iterator()
	keys := []string{managersKey}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan analytics cache keys")
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache entries")
	}

	return nil
}
