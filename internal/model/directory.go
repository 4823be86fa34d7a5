package model

import (
	"time"

	"github.com/google/uuid"
)

// Organizer 主辦方。UserID 是外部身分提供者給的識別碼，預約 API 用它查找
type Organizer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Event struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type Location struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TicketCategory 活動的票種，BlockSeat 是解碼後的座位認領；
// 原始 jsonb 格式錯誤時為 nil（視為沒有對應的區塊）
type TicketCategory struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	EventID   uuid.UUID        `json:"event_id" db:"event_id"`
	Name      string           `json:"name" db:"name"`
	Price     float64          `json:"price" db:"price"`
	Quantity  int              `json:"quantity" db:"quantity"`
	BlockSeat *BlockSeatEntity `json:"block_seat_entity,omitempty" db:"block_seat_entity"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}
