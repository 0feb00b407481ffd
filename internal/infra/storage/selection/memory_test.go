package selection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	from := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	_, err := store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrRangeNotFound)

	require.NoError(t, store.Save(ctx, 1, domain.DateRange{From: &from, To: &to}, 0))

	got, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, from, *got.From)
	assert.Equal(t, to, *got.To)

	_, err = store.Load(ctx, 2)
	assert.ErrorIs(t, err, ErrRangeNotFound)

	require.NoError(t, store.Delete(ctx, 1))
	_, err = store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrRangeNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	from := now
	require.NoError(t, store.Save(ctx, 1, domain.DateRange{From: &from}, time.Hour))

	_, err := store.Load(ctx, 1)
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrRangeNotFound)
}
