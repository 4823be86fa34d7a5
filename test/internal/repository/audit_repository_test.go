package repository

import (
	"context"
	"testing"
	"time"

	"soly-ticketing/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_InsertAndCount(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewAuditRepository(getTestDB())
	ctx := context.Background()

	reservationID := uuid.New()
	audit := &repository.ReservationAudit{
		ReservationID: reservationID,
		AdTypeID:      uuid.New(),
		EventID:       uuid.New(),
		OrganizerID:   uuid.New(),
		ReservedDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Insert(ctx, audit))
	require.NoError(t, repo.Insert(ctx, audit))

	count, err := repo.CountByReservation(ctx, reservationID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByReservation(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
