package repository

import (
	"context"

	"soly-ticketing/internal/model"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DirectoryRepository 主辦方、活動、場地的存在性查找。
// 帳號與活動生命週期由平台其他部分管理，這裡只讀
type DirectoryRepository interface {
	FindOrganizerByUserID(ctx context.Context, userID uuid.UUID) (*model.Organizer, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	FindLocationByID(ctx context.Context, id uuid.UUID) (*model.Location, error)
}

type DirectoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewDirectoryRepository(pool *pgxpool.Pool) DirectoryRepository {
	return &DirectoryRepositoryImpl{
		pool: pool,
	}
}

func (r *DirectoryRepositoryImpl) FindOrganizerByUserID(ctx context.Context, userID uuid.UUID) (*model.Organizer, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM organizers
		WHERE user_id = $1
	`

	var organizer model.Organizer
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&organizer.ID,
		&organizer.UserID,
		&organizer.Name,
		&organizer.CreatedAt,
		&organizer.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, storeErr(err)
	}

	return &organizer, nil
}

func (r *DirectoryRepositoryImpl) FindEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
		SELECT id, name, location_id, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var event model.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.LocationID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, storeErr(err)
	}

	return &event, nil
}

func (r *DirectoryRepositoryImpl) FindLocationByID(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var location model.Location
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Name,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, storeErr(err)
	}

	return &location, nil
}
