package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

const keyPrefix = "reservation:range:"

// RedisStore хранит диапазоны дат в Redis, чтобы выбор был общим для всех инстансов
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, userID int64) (*domain.DateRange, error) {
	data, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get: %v", ErrStore, err)
	}

	var rng domain.DateRange
	if err := json.Unmarshal(data, &rng); err != nil {
		return nil, fmt.Errorf("%w: Load - decode: %v", ErrStore, err)
	}
	return &rng, nil
}

func (s *RedisStore) Save(ctx context.Context, userID int64, rng domain.DateRange, ttl time.Duration) error {
	data, err := json.Marshal(rng)
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %v", ErrStore, err)
	}

	if err := s.client.Set(ctx, key(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

func key(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}
