package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gofood/food-api/internal/domain"

	"github.com/redis/go-redis/v9"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

const favoritesKey = "favorites"

// RedisFavorites keeps favorite dish ids in a set and a JSON snapshot of each
// favorited dish under its own key.
type RedisFavorites struct {
	Client *redis.Client
}

func NewRedisFavorites(client *redis.Client) *RedisFavorites {
	return &RedisFavorites{Client: client}
}

func (f *RedisFavorites) FavoriteKey(foodID int) string {
	return "favorite:" + strconv.Itoa(foodID)
}

func (f *RedisFavorites) AddFavorite(ctx context.Context, food domain.Food) error {
	payload, err := json.Marshal(food)
	if err != nil {
		return fmt.Errorf("encode favorite %d: %w", food.ID, err)
	}
	_, err = f.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, favoritesKey, food.ID)
		pipe.Set(ctx, f.FavoriteKey(food.ID), payload, 0)
		return nil
	})
	return err
}

func (f *RedisFavorites) RemoveFavorite(ctx context.Context, foodID int) error {
	var removed *redis.IntCmd
	_, err := f.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.SRem(ctx, favoritesKey, foodID)
		pipe.Del(ctx, f.FavoriteKey(foodID))
		return nil
	})
	if err != nil {
		return err
	}
	if removed.Val() == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (f *RedisFavorites) FavoriteIDs(ctx context.Context) (map[int]bool, error) {
	members, err := f.Client.SMembers(ctx, favoritesKey).Result()
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ids[id] = true
	}
	return ids, nil
}

func (f *RedisFavorites) ListFavorites(ctx context.Context) ([]domain.Food, error) {
	ids, err := f.FavoriteIDs(ctx)
	if err != nil {
		return nil, err
	}
	favorites := []domain.Food{}
	if len(ids) == 0 {
		return favorites, nil
	}

	sorted := make([]int, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Ints(sorted)

	keys := make([]string, len(sorted))
	for i, id := range sorted {
		keys[i] = f.FavoriteKey(id)
	}
	values, err := f.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var food domain.Food
		if err := json.Unmarshal([]byte(raw), &food); err != nil {
			continue
		}
		food.IsFavorite = true
		favorites = append(favorites, food)
	}
	return favorites, nil
}

// PopularAllTimeKey is the sorted set order-stats maintains from order events.
const PopularAllTimeKey = "popular:alltime"

type RedisPopularity struct {
	Client *redis.Client
}

func NewRedisPopularity(client *redis.Client) *RedisPopularity {
	return &RedisPopularity{Client: client}
}

func (p *RedisPopularity) TopFoodIDs(ctx context.Context, limit int) ([]int, error) {
	if limit <= 0 {
		return []int{}, nil
	}
	members, err := p.Client.ZRevRange(ctx, PopularAllTimeKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
