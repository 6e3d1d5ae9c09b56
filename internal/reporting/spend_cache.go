package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const spendKeyPrefix = "reporting:spend:"

// SpendCache keeps a running approved-spend total per brand and month in
// Redis. The cost.approved consumer feeds it; reads fall back to the cost
// table when the key is missing.
type SpendCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewSpendCache(rdb *redis.Client, logger ...*zap.Logger) *SpendCache {
	l := zap.L().Named("reporting.spendcache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.spendcache")
	}
	return &SpendCache{rdb: rdb, logger: l}
}

func SpendKey(brandID, month string) string {
	return fmt.Sprintf("%s%s:%s", spendKeyPrefix, brandID, month)
}

// Add accumulates an approved amount into the brand's month total. The key
// expires well past month end so stale brands do not pile up.
func (c *SpendCache) Add(ctx context.Context, brandID, month string, amount decimal.Decimal) error {
	key := SpendKey(brandID, month)
	f, _ := amount.Float64()

	pipe := c.rdb.TxPipeline()
	pipe.IncrByFloat(ctx, key, f)
	pipe.Expire(ctx, key, 45*24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("spend cache increment failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Get returns the cached month total. The second return reports whether the
// key existed.
func (c *SpendCache) Get(ctx context.Context, brandID, month string) (decimal.Decimal, bool, error) {
	val, err := c.rdb.Get(ctx, SpendKey(brandID, month)).Result()
	if err == redis.Nil {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	total, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, err
	}
	return total, true, nil
}
