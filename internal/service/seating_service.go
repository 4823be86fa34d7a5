package service

import (
	"context"
	"fmt"
	"strings"

	"soly-ticketing/internal/model"
	"soly-ticketing/internal/repository"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
)

type SeatingService interface {
	// CreateBlocks 建立一個區塊並一次產生 rows×columns 個座位。
	// 區塊名稱不檢查唯一性（同場地允許同名，沿用平台既有行為）
	CreateBlocks(ctx context.Context, locationID uuid.UUID, numOfRows, numOfColumns int, blockName string) (*model.CreateBlocksResult, error)
	// BlocksForLocation 純庫存視圖：沒有活動脈絡，所有座位都是 available
	BlocksForLocation(ctx context.Context, locationID uuid.UUID) ([]*model.SeatingBlockView, error)
	// BlocksWithEventAvailability 對特定活動推導座位狀態。純讀取投影，
	// 不寫回 seats 或 ticket_categories
	BlocksWithEventAvailability(ctx context.Context, locationID, eventID uuid.UUID) ([]*model.SeatingBlockView, error)
	// EventSeatCapacity 活動票種認領的座位總數（審核通過前的容量檢查）
	EventSeatCapacity(ctx context.Context, eventID uuid.UUID) (int, error)
}

type SeatingServiceImpl struct {
	seatingRepo   repository.SeatingRepository
	categoryRepo  repository.TicketCategoryRepository
	directoryRepo repository.DirectoryRepository
}

func NewSeatingService(
	seatingRepo repository.SeatingRepository,
	categoryRepo repository.TicketCategoryRepository,
	directoryRepo repository.DirectoryRepository,
) SeatingService {
	return &SeatingServiceImpl{
		seatingRepo:   seatingRepo,
		categoryRepo:  categoryRepo,
		directoryRepo: directoryRepo,
	}
}

func (s *SeatingServiceImpl) CreateBlocks(ctx context.Context, locationID uuid.UUID, numOfRows, numOfColumns int, blockName string) (*model.CreateBlocksResult, error) {
	if numOfRows <= 0 || numOfColumns <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	location, err := s.directoryRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	block, err := s.seatingRepo.CreateBlock(ctx, &model.SeatingBlock{
		LocationID: location.ID,
		Name:       blockName,
		NumRows:    numOfRows,
		NumColumns: numOfColumns,
	})
	if err != nil {
		return nil, err
	}

	seats := make([]*model.Seat, 0, numOfRows*numOfColumns)
	for row := 1; row <= numOfRows; row++ {
		for col := 1; col <= numOfColumns; col++ {
			seats = append(seats, &model.Seat{
				SeatingBlockID: block.ID,
				SeatNumber:     row*100 + col,
				Title:          fmt.Sprintf("Sıra %d Koltuk %d", row, col),
				Row:            row,
				Column:         col,
				Empty:          true,
			})
		}
	}

	created, err := s.seatingRepo.BulkInsertSeats(ctx, seats)
	if err != nil {
		return nil, err
	}

	return &model.CreateBlocksResult{
		SeatingBlockID: block.ID,
		SeatsCreated:   int(created),
	}, nil
}

func (s *SeatingServiceImpl) BlocksForLocation(ctx context.Context, locationID uuid.UUID) ([]*model.SeatingBlockView, error) {
	blocks, err := s.seatingRepo.ListBlocksWithSeats(ctx, locationID)
	if err != nil {
		return nil, err
	}

	views := make([]*model.SeatingBlockView, 0, len(blocks))
	for _, block := range blocks {
		views = append(views, &model.SeatingBlockView{
			SeatingBlock: *block,
			SeatRows: groupSeatsByRow(block.Seats, func(*model.Seat) model.SeatStatus {
				return model.SeatStatusAvailable
			}),
		})
	}

	return views, nil
}

func (s *SeatingServiceImpl) BlocksWithEventAvailability(ctx context.Context, locationID, eventID uuid.UUID) ([]*model.SeatingBlockView, error) {
	blocks, err := s.seatingRepo.ListBlocksWithSeats(ctx, locationID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrTicketCategoryNotFound
	}

	views := make([]*model.SeatingBlockView, 0, len(blocks))
	for _, block := range blocks {
		category := matchCategoryForBlock(categories, block.ID)
		if category == nil {
			// 這個活動沒有票種認領此區塊，整塊不出現在結果裡
			continue
		}

		blockSeat := category.BlockSeat
		views = append(views, &model.SeatingBlockView{
			SeatingBlock: *block,
			SeatRows: groupSeatsByRow(block.Seats, func(seat *model.Seat) model.SeatStatus {
				return blockSeat.SeatStatus(seat.ID.String())
			}),
		})
	}

	return views, nil
}

func (s *SeatingServiceImpl) EventSeatCapacity(ctx context.Context, eventID uuid.UUID) (int, error) {
	categories, err := s.categoryRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if len(categories) == 0 {
		return 0, apperrors.ErrTicketCategoryNotFound
	}

	total := 0
	for _, category := range categories {
		if category.BlockSeat == nil {
			continue
		}
		claimed, all := category.BlockSeat.ClaimedSeats()
		if !all {
			total += claimed
			continue
		}

		blockID, err := uuid.Parse(strings.TrimSpace(category.BlockSeat.Block))
		if err != nil {
			continue
		}
		block, err := s.seatingRepo.FindBlockByID(ctx, blockID)
		if err != nil {
			if err == apperrors.ErrSeatingBlockNotFound {
				continue
			}
			return 0, err
		}
		total += block.Capacity()
	}

	if total == 0 {
		return 0, apperrors.ErrZeroSeatCapacity
	}
	return total, nil
}

// matchCategoryForBlock 找出認領此區塊的票種：比對時兩邊都去空白。
// BlockSeat 為 nil（原始 jsonb 格式錯誤）的票種視為不認領任何區塊
func matchCategoryForBlock(categories []*model.TicketCategory, blockID uuid.UUID) *model.TicketCategory {
	normalizedBlockID := strings.TrimSpace(blockID.String())
	for _, category := range categories {
		if category.BlockSeat == nil {
			continue
		}
		if strings.TrimSpace(category.BlockSeat.Block) == normalizedBlockID {
			return category
		}
	}
	return nil
}

// groupSeatsByRow 座位依 row 分組成二維陣列（index = row-1），沒有座位的 row 濾掉。
// 座位已由儲存層依 (row, column) 排序，這裡只做分組
func groupSeatsByRow(seats []*model.Seat, statusFor func(*model.Seat) model.SeatStatus) [][]*model.SeatView {
	maxRow := 0
	for _, seat := range seats {
		if seat.Row > maxRow {
			maxRow = seat.Row
		}
	}

	rows := make([][]*model.SeatView, maxRow)
	for _, seat := range seats {
		if seat.Row < 1 {
			continue
		}
		rows[seat.Row-1] = append(rows[seat.Row-1], &model.SeatView{
			Seat:   *seat,
			Status: statusFor(seat),
		})
	}

	grouped := make([][]*model.SeatView, 0, maxRow)
	for _, row := range rows {
		if len(row) > 0 {
			grouped = append(grouped, row)
		}
	}
	return grouped
}
