package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationAudit 廣告預約稽核紀錄，由 worker 非同步寫入
type ReservationAudit struct {
	ID            int64     `json:"id" db:"id"`
	ReservationID uuid.UUID `json:"reservation_id" db:"reservation_id"`
	AdTypeID      uuid.UUID `json:"ad_type_id" db:"ad_type_id"`
	EventID       uuid.UUID `json:"event_id" db:"event_id"`
	OrganizerID   uuid.UUID `json:"organizer_id" db:"organizer_id"`
	ReservedDate  time.Time `json:"reserved_date" db:"reserved_date"`
	RecordedAt    time.Time `json:"recorded_at" db:"recorded_at"`
}

type AuditRepository interface {
	Insert(ctx context.Context, audit *ReservationAudit) error
	CountByReservation(ctx context.Context, reservationID uuid.UUID) (int, error)
}

type AuditRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &AuditRepositoryImpl{
		pool: pool,
	}
}

func (r *AuditRepositoryImpl) Insert(ctx context.Context, audit *ReservationAudit) error {
	query := `
		INSERT INTO ad_reservation_audits (
		reservation_id, ad_type_id, event_id, organizer_id, reserved_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, recorded_at
	`

	err := r.pool.QueryRow(ctx, query,
		audit.ReservationID, audit.AdTypeID, audit.EventID, audit.OrganizerID, audit.ReservedDate,
	).Scan(&audit.ID, &audit.RecordedAt)
	if err != nil {
		return storeErr(err)
	}

	return nil
}

func (r *AuditRepositoryImpl) CountByReservation(ctx context.Context, reservationID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM ad_reservation_audits
		WHERE reservation_id = $1
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, reservationID).Scan(&count); err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
