package cache

import (
	"context"
	"encoding/json"
	"time"

	"ticketgate/internal/infra"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "report:event:"

// ReportCache keeps the most recent report snapshot per event in Redis with
// a short TTL, so dashboard polling recomputes on expiry instead of holding
// live state.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ReportCache) Get(ctx context.Context, eventID uuid.UUID) (*queries.EventReportView, bool, error) {
	payload, err := c.client.Get(ctx, reportKeyPrefix+eventID.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to read cached report", err, infra.KindCacheFailure)
	}

	var report queries.EventReportView
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		// A stale or corrupt entry is treated as a miss; it expires on its own.
		return nil, false, nil
	}

	return &report, true, nil
}

func (c *ReportCache) Set(ctx context.Context, report *queries.EventReportView) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return infra.WrapRepoErr("failed to encode report for cache", err, infra.KindCacheFailure)
	}

	key := reportKeyPrefix + report.EventID.String()
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write cached report", err, infra.KindCacheFailure)
	}

	return nil
}
