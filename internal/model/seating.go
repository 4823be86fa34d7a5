package model

import (
	"time"

	"github.com/google/uuid"
)

// SeatStatus 座位對特定活動的可用狀態。狀態是推導出來的，不會寫回 seats 資料表
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusReserved  SeatStatus = "reserved"
)

// SeatingBlock 場地座位區塊。建立時一次產生 rows×columns 個座位，之後不再改變大小
type SeatingBlock struct {
	ID         uuid.UUID `json:"id" db:"id"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	Name       string    `json:"name" db:"name"`
	NumRows    int       `json:"num_of_rows" db:"num_rows"`
	NumColumns int       `json:"num_of_columns" db:"num_columns"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	Seats []*Seat `json:"-" db:"-"`
}

// Capacity 區塊座位總數
func (b *SeatingBlock) Capacity() int {
	return b.NumRows * b.NumColumns
}

type Seat struct {
	ID             uuid.UUID `json:"id" db:"id"`
	SeatingBlockID uuid.UUID `json:"seating_block_id" db:"seating_block_id"`
	SeatNumber     int       `json:"seat_number" db:"seat_number"`
	Title          string    `json:"title" db:"title"`
	Row            int       `json:"row" db:"row"`
	Column         int       `json:"column" db:"column"`
	Empty          bool      `json:"empty" db:"empty"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// SeatView 帶狀態的座位投影，只出現在查詢回應裡
type SeatView struct {
	Seat
	Status SeatStatus `json:"status"`
}

// SeatingBlockView 區塊投影：座位依 row 分組（index = row-1，空的 row 會被濾掉）
type SeatingBlockView struct {
	SeatingBlock
	SeatRows [][]*SeatView `json:"seats"`
}

// CreateBlocksResult 建立結果：產生的座位數
type CreateBlocksResult struct {
	SeatingBlockID uuid.UUID `json:"seating_block_id"`
	SeatsCreated   int       `json:"seats_created"`
}
