package repository

import (
	"context"
	"time"

	"soly-ticketing/internal/model"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdReservationRepository interface {
	// CountsInWindow 窗口內每天的預約數，key 是 YYYY-MM-DD
	CountsInWindow(ctx context.Context, adTypeID uuid.UUID, start, end time.Time) (map[string]int, error)
	// DatesForEvent 同一活動在窗口內已預約的日期集合
	DatesForEvent(ctx context.Context, eventID, adTypeID uuid.UUID, start, end time.Time) (map[string]struct{}, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*model.AdReservation, error)

	// Transaction methods
	CountByTypeAndDate(ctx context.Context, tx pgx.Tx, adTypeID uuid.UUID, date time.Time) (int, error)
	Create(ctx context.Context, tx pgx.Tx, reservation *model.AdReservation) (*model.AdReservation, error)
}

type AdReservationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAdReservationRepository(pool *pgxpool.Pool) AdReservationRepository {
	return &AdReservationRepositoryImpl{
		pool: pool,
	}
}

func (r *AdReservationRepositoryImpl) CountsInWindow(ctx context.Context, adTypeID uuid.UUID, start, end time.Time) (map[string]int, error) {
	query := `
		SELECT start_date, COUNT(*)
		FROM ad_reservations
		WHERE ad_type_id = $1 AND start_date >= $2 AND start_date <= $3
		GROUP BY start_date
	`

	rows, err := r.pool.Query(ctx, query, adTypeID, start, end)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, err
		}
		counts[model.DateKey(date)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return counts, nil
}

func (r *AdReservationRepositoryImpl) DatesForEvent(ctx context.Context, eventID, adTypeID uuid.UUID, start, end time.Time) (map[string]struct{}, error) {
	query := `
		SELECT start_date
		FROM ad_reservations
		WHERE event_id = $1 AND ad_type_id = $2 AND start_date >= $3 AND start_date <= $4
	`

	rows, err := r.pool.Query(ctx, query, eventID, adTypeID, start, end)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	dates := make(map[string]struct{})
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates[model.DateKey(date)] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return dates, nil
}

func (r *AdReservationRepositoryImpl) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*model.AdReservation, error) {
	query := `
		SELECT ar.id, ar.ad_type_id, ar.event_id, ar.organizer_id, ar.image, ar.status,
			ar.start_date, ar.end_date, ar.created_at, ar.updated_at,
			at.name, e.name
		FROM ad_reservations ar
		JOIN ad_types at ON at.id = ar.ad_type_id
		JOIN events e ON e.id = ar.event_id
		WHERE ar.organizer_id = $1
		ORDER BY ar.start_date ASC
	`

	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	reservations := make([]*model.AdReservation, 0)
	for rows.Next() {
		var reservation model.AdReservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.AdTypeID,
			&reservation.EventID,
			&reservation.OrganizerID,
			&reservation.Image,
			&reservation.Status,
			&reservation.StartDate,
			&reservation.EndDate,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
			&reservation.AdTypeName,
			&reservation.EventName,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return reservations, nil
}

func (r *AdReservationRepositoryImpl) CountByTypeAndDate(ctx context.Context, tx pgx.Tx, adTypeID uuid.UUID, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM ad_reservations
		WHERE ad_type_id = $1 AND start_date = $2
	`

	var count int
	if err := tx.QueryRow(ctx, query, adTypeID, date).Scan(&count); err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (r *AdReservationRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, reservation *model.AdReservation) (*model.AdReservation, error) {
	query := `
		INSERT INTO ad_reservations (
		ad_type_id, event_id, organizer_id, image, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, ad_type_id, event_id, organizer_id, image, status,
			start_date, end_date, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		reservation.AdTypeID, reservation.EventID, reservation.OrganizerID,
		reservation.Image, reservation.Status, reservation.StartDate, reservation.EndDate,
	).Scan(
		&reservation.ID,
		&reservation.AdTypeID,
		&reservation.EventID,
		&reservation.OrganizerID,
		&reservation.Image,
		&reservation.Status,
		&reservation.StartDate,
		&reservation.EndDate,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateAdReservation
		}
		return nil, storeErr(err)
	}

	return reservation, nil
}
