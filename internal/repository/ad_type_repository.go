package repository

import (
	"context"

	"soly-ticketing/internal/model"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdTypeRepository interface {
	List(ctx context.Context) ([]*model.AdType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AdType, error)

	// Transaction methods
	// FindByIDWithLock 鎖住 ad_types 資料列，讓同一廣告類型的預約寫入序列化
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.AdType, error)
}

type AdTypeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAdTypeRepository(pool *pgxpool.Pool) AdTypeRepository {
	return &AdTypeRepositoryImpl{
		pool: pool,
	}
}

func (r *AdTypeRepositoryImpl) List(ctx context.Context) ([]*model.AdType, error) {
	query := `
		SELECT id, name, daily_capacity, price, image_size, created_at, updated_at
		FROM ad_types
		ORDER BY price DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	adTypes := make([]*model.AdType, 0)
	for rows.Next() {
		var adType model.AdType
		err := rows.Scan(
			&adType.ID,
			&adType.Name,
			&adType.DailyCapacity,
			&adType.Price,
			&adType.ImageSize,
			&adType.CreatedAt,
			&adType.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		adTypes = append(adTypes, &adType)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return adTypes, nil
}

func (r *AdTypeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.AdType, error) {
	query := `
		SELECT id, name, daily_capacity, price, image_size, created_at, updated_at
		FROM ad_types
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *AdTypeRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.AdType, error) {
	query := `
		SELECT id, name, daily_capacity, price, image_size, created_at, updated_at
		FROM ad_types
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanOne(tx.QueryRow(ctx, query, id))
}

func (r *AdTypeRepositoryImpl) scanOne(row pgx.Row) (*model.AdType, error) {
	var adType model.AdType
	err := row.Scan(
		&adType.ID,
		&adType.Name,
		&adType.DailyCapacity,
		&adType.Price,
		&adType.ImageSize,
		&adType.CreatedAt,
		&adType.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAdTypeNotFound
		}
		return nil, storeErr(err)
	}
	return &adType, nil
}
