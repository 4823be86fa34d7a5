package model

import (
	"time"

	"github.com/google/uuid"
)

// AdType 廣告類型（靜態參照資料）。DailyCapacity 是同一天可排的廣告上限
type AdType struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	DailyCapacity int       `json:"daily_capacity" db:"daily_capacity"`
	Price         float64   `json:"price" db:"price"`
	ImageSize     string    `json:"image_size" db:"image_size"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// AdReservation 單日廣告預約。建立後不再修改，StartDate 與 EndDate 相同
type AdReservation struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AdTypeID    uuid.UUID `json:"ad_type_id" db:"ad_type_id"`
	EventID     uuid.UUID `json:"event_id" db:"event_id"`
	OrganizerID uuid.UUID `json:"organizer_id" db:"organizer_id"`
	Image       string    `json:"image" db:"image"`
	Status      bool      `json:"status" db:"status"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	AdTypeName *string `json:"ad_type_name,omitempty" db:"-"`
	EventName  *string `json:"event_name,omitempty" db:"-"`
}

// DateOutcome 批次預約中單一日期的處理結果
type DateOutcome string

const (
	DateOutcomeCommitted DateOutcome = "committed"
	DateOutcomeRejected  DateOutcome = "rejected"
	// 前面的日期被拒絕後，剩餘日期不再處理
	DateOutcomeSkipped DateOutcome = "skipped"
)

// DateReservation 逐日結果：已提交的日期帶預約資料，被拒絕的日期帶原因。
// 迴圈在第一個被拒絕的日期停止，先前提交的預約保留（非全有全無）
type DateReservation struct {
	Date        time.Time      `json:"date"`
	Outcome     DateOutcome    `json:"outcome"`
	Reason      string         `json:"reason,omitempty"`
	Reservation *AdReservation `json:"reservation,omitempty"`
}

// ReserveAdDatesRequest 預約廣告日期請求
type ReserveAdDatesRequest struct {
	OrganizerUserID string   `json:"org_id" binding:"required"`
	AdTypeID        string   `json:"type_id" binding:"required"`
	EventID         string   `json:"event_id" binding:"required"`
	Image           string   `json:"image" binding:"required"`
	Dates           []string `json:"date_list" binding:"required,min=1"`
}
