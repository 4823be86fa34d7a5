package repository

import (
	"context"

	"soly-ticketing/internal/model"
	"soly-ticketing/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TicketCategoryRepository interface {
	// ListByEventID 活動的票種。block_seat_entity 在這裡解碼一次，
	// 格式錯誤的值記 log 後以 nil 帶出（呼叫端視為沒有座位認領）
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.TicketCategory, error)
}

type TicketCategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketCategoryRepository(pool *pgxpool.Pool) TicketCategoryRepository {
	return &TicketCategoryRepositoryImpl{
		pool: pool,
	}
}

func (r *TicketCategoryRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.TicketCategory, error) {
	query := `
		SELECT id, event_id, name, price, quantity, block_seat_entity, created_at, updated_at
		FROM ticket_categories
		WHERE event_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	categories := make([]*model.TicketCategory, 0)
	for rows.Next() {
		var category model.TicketCategory
		var rawBlockSeat []byte
		err := rows.Scan(
			&category.ID,
			&category.EventID,
			&category.Name,
			&category.Price,
			&category.Quantity,
			&rawBlockSeat,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		blockSeat, ok := model.ParseBlockSeatEntity(rawBlockSeat)
		if !ok && len(rawBlockSeat) > 0 {
			logger.WithComponent("repository").Warn("malformed block_seat_entity, treating category as unmatched",
				zap.String("ticket_category_id", category.ID.String()))
		}
		category.BlockSeat = blockSeat

		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return categories, nil
}
