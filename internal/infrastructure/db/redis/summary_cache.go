package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flowboard/workflow-api/internal/core/domain"
)

const summaryTTL = 30 * time.Second

// SummaryCache keeps dashboard summaries hot for a short window so the
// landing page does not hammer the aggregate queries.
// Key format: summary:<company_id>
type SummaryCache struct {
	client *redis.Client
}

func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, companyID int64) (*domain.DashboardSummary, error) {
	raw, err := c.client.Get(ctx, c.key(companyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("summary cache get: %w", err)
	}

	summary := &domain.DashboardSummary{}
	if err := json.Unmarshal(raw, summary); err != nil {
		return nil, fmt.Errorf("summary cache decode: %w", err)
	}
	return summary, nil
}

func (c *SummaryCache) Set(ctx context.Context, companyID int64, summary *domain.DashboardSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(companyID), raw, summaryTTL).Err(); err != nil {
		return fmt.Errorf("summary cache set: %w", err)
	}
	return nil
}

func (c *SummaryCache) key(companyID int64) string {
	return fmt.Sprintf("summary:%d", companyID)
}
