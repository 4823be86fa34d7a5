package cache

import (
	"context"
	"testing"
	"time"

	"soly-ticketing/internal/cache"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdSlotInventory_ReserveSlot(t *testing.T) {
	ctx := context.Background()
	inventory := cache.NewAdSlotInventoryManager(getTestRdb())
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	adTypeID := uuid.New()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success - counts up to capacity", func(t *testing.T) {
		defer clearRedis(ctx)

		for i := 0; i < 3; i++ {
			ok, err := inventory.ReserveSlot(ctx, adTypeID, day, 3)
			require.NoError(t, err)
			assert.True(t, ok)
		}

		count, err := inventory.SlotCount(ctx, adTypeID, day)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Failed - ErrAdDateCapacityFull at capacity", func(t *testing.T) {
		defer clearRedis(ctx)

		for i := 0; i < 2; i++ {
			ok, err := inventory.ReserveSlot(ctx, adTypeID, day, 2)
			require.NoError(t, err)
			assert.True(t, ok)
		}

		ok, err := inventory.ReserveSlot(ctx, adTypeID, day, 2)
		assert.False(t, ok)
		assert.ErrorIs(t, err, apperrors.ErrAdDateCapacityFull)

		// 被擋下的請求不會動到計數
		count, err := inventory.SlotCount(ctx, adTypeID, day)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Dates count independently", func(t *testing.T) {
		defer clearRedis(ctx)

		otherDay := day.AddDate(0, 0, 1)
		ok, err := inventory.ReserveSlot(ctx, adTypeID, day, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = inventory.ReserveSlot(ctx, adTypeID, otherDay, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAdSlotInventory_ReleaseSlot(t *testing.T) {
	ctx := context.Background()
	inventory := cache.NewAdSlotInventoryManager(getTestRdb())
	clearRedis(ctx)
	t.Cleanup(func() {
		clearRedis(ctx)
	})

	adTypeID := uuid.New()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success - frees a slot for the next caller", func(t *testing.T) {
		defer clearRedis(ctx)

		ok, err := inventory.ReserveSlot(ctx, adTypeID, day, 1)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, inventory.ReleaseSlot(ctx, adTypeID, day))

		ok, err = inventory.ReserveSlot(ctx, adTypeID, day, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Release never drops below zero", func(t *testing.T) {
		defer clearRedis(ctx)

		require.NoError(t, inventory.ReleaseSlot(ctx, adTypeID, day))

		count, err := inventory.SlotCount(ctx, adTypeID, day)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
