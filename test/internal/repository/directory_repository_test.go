package repository

import (
	"context"
	"testing"

	"soly-ticketing/internal/repository"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryRepository_FindOrganizerByUserID(t *testing.T) {
	repo := repository.NewDirectoryRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		userID := uuid.New()
		organizerID := createTestOrganizer(t, userID, "Organizer A")

		found, err := repo.FindOrganizerByUserID(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, organizerID, found.ID)
		assert.Equal(t, userID, found.UserID)
		assert.Equal(t, "Organizer A", found.Name)
	})

	t.Run("Failed - ErrOrganizerNotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindOrganizerByUserID(ctx, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrOrganizerNotFound)
	})
}

func TestDirectoryRepository_FindEventByID(t *testing.T) {
	repo := repository.NewDirectoryRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		locationID := createTestLocation(t, "Arena")
		eventID := createTestEvent(t, locationID, "Concert")

		found, err := repo.FindEventByID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, eventID, found.ID)
		assert.Equal(t, "Concert", found.Name)
		assert.Equal(t, locationID, found.LocationID)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindEventByID(ctx, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestDirectoryRepository_FindLocationByID(t *testing.T) {
	repo := repository.NewDirectoryRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		locationID := createTestLocation(t, "Arena")

		found, err := repo.FindLocationByID(ctx, locationID)

		require.NoError(t, err)
		assert.Equal(t, locationID, found.ID)
		assert.Equal(t, "Arena", found.Name)
	})

	t.Run("Failed - ErrLocationNotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindLocationByID(ctx, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
	})
}
