package booking

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, "")

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save(ctx, sampleBookings()))
	assert.True(t, mr.Exists(domain.StorageNamespace))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b-1", got[0].ID)
	assert.Equal(t, domain.StatusCancelled, got[1].Status)
	assert.Equal(t, "Анна Иванова", got[0].Master.Name)
}

func TestRedisStoreSaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	store := NewRedisStore(client, "test-ns")

	require.NoError(t, store.Save(ctx, sampleBookings()))
	require.NoError(t, store.Save(ctx, sampleBookings()[:1]))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRedisStoreCorruptedData(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set(domain.StorageNamespace, "not json"))

	_, err := NewRedisStore(client, "").Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptedData)
}

func TestRedisStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, "")
	mr.Close()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrRedis)
	assert.ErrorIs(t, store.Save(ctx, sampleBookings()), ErrRedis)
}
