package repository

import (
	"context"
	"testing"
	"time"

	"soly-ticketing/internal/model"
	"soly-ticketing/internal/repository"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	organizerID uuid.UUID
	eventID     uuid.UUID
	otherEvent  uuid.UUID
	adTypeID    uuid.UUID
}

func setupReservationFixture(t *testing.T) reservationFixture {
	t.Helper()

	locationID := createTestLocation(t, "Arena")
	return reservationFixture{
		organizerID: createTestOrganizer(t, uuid.New(), "Organizer A"),
		eventID:     createTestEvent(t, locationID, "Concert"),
		otherEvent:  createTestEvent(t, locationID, "Theatre"),
		adTypeID:    createTestAdType(t, "mainPage", 10, 500),
	}
}

func insertReservation(t *testing.T, repo repository.AdReservationRepository, fx reservationFixture, eventID uuid.UUID, date time.Time) *model.AdReservation {
	t.Helper()
	ctx := context.Background()

	tx, err := getTestDB().Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	created, err := repo.Create(ctx, tx, &model.AdReservation{
		AdTypeID:    fx.adTypeID,
		EventID:     eventID,
		OrganizerID: fx.organizerID,
		Image:       "banner.png",
		Status:      true,
		StartDate:   date,
		EndDate:     date,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	return created
}

func TestAdReservationRepository_Create(t *testing.T) {
	repo := repository.NewAdReservationRepository(getTestDB())
	ctx := context.Background()

	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()
		fx := setupReservationFixture(t)

		created := insertReservation(t, repo, fx, fx.eventID, day)

		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, fx.adTypeID, created.AdTypeID)
		assert.Equal(t, fx.eventID, created.EventID)
		assert.Equal(t, fx.organizerID, created.OrganizerID)
		assert.True(t, created.Status)
		assert.Equal(t, day, created.StartDate)
		assert.Equal(t, day, created.EndDate)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Failed - ErrDuplicateAdReservation on same event, type and date", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()
		fx := setupReservationFixture(t)

		insertReservation(t, repo, fx, fx.eventID, day)

		tx, err := getTestDB().Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = repo.Create(ctx, tx, &model.AdReservation{
			AdTypeID:    fx.adTypeID,
			EventID:     fx.eventID,
			OrganizerID: fx.organizerID,
			Image:       "other.png",
			Status:      true,
			StartDate:   day,
			EndDate:     day,
		})

		assert.ErrorIs(t, err, apperrors.ErrDuplicateAdReservation)
	})

	t.Run("Success - other event may take the same date", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()
		fx := setupReservationFixture(t)

		insertReservation(t, repo, fx, fx.eventID, day)
		created := insertReservation(t, repo, fx, fx.otherEvent, day)

		assert.Equal(t, fx.otherEvent, created.EventID)
	})
}

func TestAdReservationRepository_CountsInWindow(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewAdReservationRepository(getTestDB())
	ctx := context.Background()
	fx := setupReservationFixture(t)

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	insertReservation(t, repo, fx, fx.eventID, start)
	insertReservation(t, repo, fx, fx.otherEvent, start)
	insertReservation(t, repo, fx, fx.eventID, start.AddDate(0, 0, 3))
	// 窗口外的預約不會被算進來
	insertReservation(t, repo, fx, fx.eventID, end.AddDate(0, 0, 1))

	counts, err := repo.CountsInWindow(ctx, fx.adTypeID, start, end)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"2026-04-01": 2,
		"2026-04-04": 1,
	}, counts)
}

func TestAdReservationRepository_DatesForEvent(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewAdReservationRepository(getTestDB())
	ctx := context.Background()
	fx := setupReservationFixture(t)

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	insertReservation(t, repo, fx, fx.eventID, start)
	insertReservation(t, repo, fx, fx.otherEvent, start.AddDate(0, 0, 2))

	dates, err := repo.DatesForEvent(ctx, fx.eventID, fx.adTypeID, start, end)

	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"2026-04-01": {}}, dates)
}

func TestAdReservationRepository_ListByOrganizer(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewAdReservationRepository(getTestDB())
	ctx := context.Background()
	fx := setupReservationFixture(t)

	day := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	insertReservation(t, repo, fx, fx.eventID, day.AddDate(0, 0, 1))
	insertReservation(t, repo, fx, fx.eventID, day)

	reservations, err := repo.ListByOrganizer(ctx, fx.organizerID)

	require.NoError(t, err)
	require.Len(t, reservations, 2)
	// start_date 升冪
	assert.Equal(t, day, reservations[0].StartDate)
	require.NotNil(t, reservations[0].AdTypeName)
	assert.Equal(t, "mainPage", *reservations[0].AdTypeName)
	require.NotNil(t, reservations[0].EventName)
	assert.Equal(t, "Concert", *reservations[0].EventName)

	empty, err := repo.ListByOrganizer(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAdReservationRepository_CountByTypeAndDate(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewAdReservationRepository(getTestDB())
	ctx := context.Background()
	fx := setupReservationFixture(t)

	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	insertReservation(t, repo, fx, fx.eventID, day)
	insertReservation(t, repo, fx, fx.otherEvent, day)

	tx, err := getTestDB().Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	count, err := repo.CountByTypeAndDate(ctx, tx, fx.adTypeID, day)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByTypeAndDate(ctx, tx, fx.adTypeID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
