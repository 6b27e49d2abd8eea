package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// RedisStore хранит коллекцию одним JSON значением под ключом пространства имён
type RedisStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisStore создает хранилище; пустой namespace заменяется на domain.StorageNamespace
func NewRedisStore(client redis.Cmdable, namespace string) *RedisStore {
	if namespace == "" {
		namespace = domain.StorageNamespace
	}
	return &RedisStore{client: client, key: namespace}
}

func (s *RedisStore) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrRedis, s.key, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrRedis, s.key, err)
	}
	return decodeBookings(data)
}
