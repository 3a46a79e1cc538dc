package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gofood/order-stats/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PopularAllTimeKey is also read by food-api when ranking dishes.
const PopularAllTimeKey = "popular:alltime"

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

func DailyKey(day time.Time) string {
	return "popular:daily:" + day.Format("2006-01-02")
}

func StatsKey(productID int) string {
	return fmt.Sprintf("dish:%d:stats", productID)
}

func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	day := event.Timestamp
	if day.IsZero() {
		day = s.now()
	}
	member := strconv.Itoa(event.ProductID)
	dailyKey := DailyKey(day.UTC())
	statsKey := StatsKey(event.ProductID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, PopularAllTimeKey, 1, member)
		pipe.ZIncrBy(ctx, dailyKey, 1, member)
		pipe.Expire(ctx, dailyKey, 7*24*time.Hour)
		pipe.HIncrBy(ctx, statsKey, "orders", 1)
		pipe.HIncrByFloat(ctx, statsKey, "revenue", event.Price)
		pipe.HIncrBy(ctx, statsKey, "extras", int64(event.ExtrasCount))
		pipe.HSet(ctx, statsKey, "last_order_id", event.OrderID, "last_updated", s.now().Unix())
		return nil
	})
	return err
}

func (s *Store) Stats(ctx context.Context, productID int) (domain.DishStats, error) {
	stats := domain.DishStats{ProductID: productID}
	values, err := s.rdb.HGetAll(ctx, StatsKey(productID)).Result()
	if err != nil {
		return stats, err
	}
	stats.Orders, _ = strconv.ParseInt(values["orders"], 10, 64)
	stats.Revenue, _ = strconv.ParseFloat(values["revenue"], 64)
	stats.Extras, _ = strconv.ParseInt(values["extras"], 10, 64)
	return stats, nil
}
