package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	want := sampleBookings()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].Service, got[0].Service)
	assert.True(t, want[0].ConfirmedAt.Equal(*got[0].ConfirmedAt))
	assert.Nil(t, got[1].Service)
	assert.True(t, want[1].CancelledAt.Equal(*got[1].CancelledAt))
}

func TestMemoryStoreLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, sampleBookings()))

	first, err := store.Load(ctx)
	require.NoError(t, err)
	first[0].Status = "mutated"
	first[0].Master.Specialization[0] = "massage"

	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", string(second[0].Status))
	assert.Equal(t, "hair", second[0].Master.Specialization[0])
}

func TestMemoryStoreCorruptedData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{oops"},
		{name: "not an array", data: `{"id":"b-1"}`},
		{name: "missing id", data: `[{"status":"confirmed","date":"2025-03-04","time":"10:00"}]`},
		{name: "draft status", data: `[{"id":"b-1","status":"pending","date":"2025-03-04","time":"10:00"}]`},
		{name: "missing time", data: `[{"id":"b-1","status":"confirmed","date":"2025-03-04"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStoreWithData([]byte(tt.data))
			_, err := store.Load(context.Background())
			assert.ErrorIs(t, err, ErrCorruptedData)
		})
	}
}

func TestMemoryStoreNullCollection(t *testing.T) {
	store := NewMemoryStoreWithData([]byte("null"))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
