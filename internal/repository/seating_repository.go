package repository

import (
	"context"

	"soly-ticketing/internal/model"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatingRepository interface {
	CreateBlock(ctx context.Context, block *model.SeatingBlock) (*model.SeatingBlock, error)
	// BulkInsertSeats 用 COPY 一次寫入整批座位，場地大時不能逐筆 round-trip
	BulkInsertSeats(ctx context.Context, seats []*model.Seat) (int64, error)
	FindBlockByID(ctx context.Context, id uuid.UUID) (*model.SeatingBlock, error)
	// ListBlocksWithSeats 回傳場地所有區塊，座位依 (row asc, column asc) 排序。
	// 場地沒有任何區塊時回傳 ErrSeatingBlockNotFound
	ListBlocksWithSeats(ctx context.Context, locationID uuid.UUID) ([]*model.SeatingBlock, error)
}

type SeatingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatingRepository(pool *pgxpool.Pool) SeatingRepository {
	return &SeatingRepositoryImpl{
		pool: pool,
	}
}

func (r *SeatingRepositoryImpl) CreateBlock(ctx context.Context, block *model.SeatingBlock) (*model.SeatingBlock, error) {
	query := `
		INSERT INTO seating_blocks (location_id, name, num_rows, num_columns)
		VALUES ($1, $2, $3, $4)
		RETURNING id, location_id, name, num_rows, num_columns, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		block.LocationID, block.Name, block.NumRows, block.NumColumns,
	).Scan(
		&block.ID,
		&block.LocationID,
		&block.Name,
		&block.NumRows,
		&block.NumColumns,
		&block.CreatedAt,
		&block.UpdatedAt,
	)
	if err != nil {
		return nil, storeErr(err)
	}

	return block, nil
}

func (r *SeatingRepositoryImpl) BulkInsertSeats(ctx context.Context, seats []*model.Seat) (int64, error) {
	rows := make([][]interface{}, 0, len(seats))
	for _, seat := range seats {
		rows = append(rows, []interface{}{
			seat.SeatingBlockID, seat.SeatNumber, seat.Title, seat.Row, seat.Column, seat.Empty,
		})
	}

	copied, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"seats"},
		[]string{"seating_block_id", "seat_number", "title", "row", "column", "empty"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, storeErr(err)
	}

	return copied, nil
}

func (r *SeatingRepositoryImpl) FindBlockByID(ctx context.Context, id uuid.UUID) (*model.SeatingBlock, error) {
	query := `
		SELECT id, location_id, name, num_rows, num_columns, created_at, updated_at
		FROM seating_blocks
		WHERE id = $1
	`

	var block model.SeatingBlock
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&block.ID,
		&block.LocationID,
		&block.Name,
		&block.NumRows,
		&block.NumColumns,
		&block.CreatedAt,
		&block.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSeatingBlockNotFound
		}
		return nil, storeErr(err)
	}

	return &block, nil
}

func (r *SeatingRepositoryImpl) ListBlocksWithSeats(ctx context.Context, locationID uuid.UUID) ([]*model.SeatingBlock, error) {
	blockQuery := `
		SELECT id, location_id, name, num_rows, num_columns, created_at, updated_at
		FROM seating_blocks
		WHERE location_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, blockQuery, locationID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	blocks := make([]*model.SeatingBlock, 0)
	byID := make(map[uuid.UUID]*model.SeatingBlock)
	for rows.Next() {
		var block model.SeatingBlock
		err := rows.Scan(
			&block.ID,
			&block.LocationID,
			&block.Name,
			&block.NumRows,
			&block.NumColumns,
			&block.CreatedAt,
			&block.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		block.Seats = make([]*model.Seat, 0, block.NumRows*block.NumColumns)
		blocks = append(blocks, &block)
		byID[block.ID] = &block
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	if len(blocks) == 0 {
		return nil, apperrors.ErrSeatingBlockNotFound
	}

	seatQuery := `
		SELECT s.id, s.seating_block_id, s.seat_number, s.title, s.row, s."column", s.empty,
			s.created_at, s.updated_at
		FROM seats s
		JOIN seating_blocks b ON b.id = s.seating_block_id
		WHERE b.location_id = $1
		ORDER BY s.row ASC, s."column" ASC
	`

	seatRows, err := r.pool.Query(ctx, seatQuery, locationID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var seat model.Seat
		err := seatRows.Scan(
			&seat.ID,
			&seat.SeatingBlockID,
			&seat.SeatNumber,
			&seat.Title,
			&seat.Row,
			&seat.Column,
			&seat.Empty,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if block, ok := byID[seat.SeatingBlockID]; ok {
			block.Seats = append(block.Seats, &seat)
		}
	}
	if err := seatRows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return blocks, nil
}
