package service

import (
	"context"
	"errors"
	"time"

	"soly-ticketing/internal/cache"
	"soly-ticketing/internal/model"
	"soly-ticketing/internal/queue"
	"soly-ticketing/internal/repository"
	apperrors "soly-ticketing/pkg/app_errors"
	"soly-ticketing/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AdService interface {
	ListAdTypes(ctx context.Context) ([]*model.AdType, error)
	// AdsOfOrganizer 主辦方的所有廣告預約（含廣告類型與活動名稱）
	AdsOfOrganizer(ctx context.Context, organizerUserID uuid.UUID) ([]*model.AdReservation, error)
	// AvailableDates 窗口 [今天, 今天+windowDays] 內該廣告類型還開放的日期。
	// 一天開放的條件：當日預約數 < 每日容量，且同一活動當日還沒預約過。純讀取
	AvailableDates(ctx context.Context, adTypeID, eventID uuid.UUID) ([]time.Time, error)
	// ReserveDates 依呼叫端給的順序逐日預約。第一個被拒絕的日期讓後續日期全部跳過，
	// 先前已提交的日期保留；每個日期的結果明確標示 committed/rejected/skipped
	ReserveDates(ctx context.Context, organizerUserID, adTypeID, eventID uuid.UUID, image string, dates []time.Time) ([]model.DateReservation, error)
}

type AdServiceImpl struct {
	pool             *pgxpool.Pool
	adTypeRepo       repository.AdTypeRepository
	reservationRepo  repository.AdReservationRepository
	directoryRepo    repository.DirectoryRepository
	inventoryManager cache.AdSlotInventoryManager
	reservationQueue queue.ReservationQueue
	windowDays       int
	now              func() time.Time
}

func NewAdService(
	pool *pgxpool.Pool,
	adTypeRepo repository.AdTypeRepository,
	reservationRepo repository.AdReservationRepository,
	directoryRepo repository.DirectoryRepository,
	inventoryManager cache.AdSlotInventoryManager,
	reservationQueue queue.ReservationQueue,
	windowDays int,
) AdService {
	if windowDays <= 0 {
		windowDays = 14
	}
	return &AdServiceImpl{
		pool:             pool,
		adTypeRepo:       adTypeRepo,
		reservationRepo:  reservationRepo,
		directoryRepo:    directoryRepo,
		inventoryManager: inventoryManager,
		reservationQueue: reservationQueue,
		windowDays:       windowDays,
		now:              time.Now,
	}
}

func (s *AdServiceImpl) ListAdTypes(ctx context.Context) ([]*model.AdType, error) {
	return s.adTypeRepo.List(ctx)
}

func (s *AdServiceImpl) AdsOfOrganizer(ctx context.Context, organizerUserID uuid.UUID) ([]*model.AdReservation, error) {
	organizer, err := s.directoryRepo.FindOrganizerByUserID(ctx, organizerUserID)
	if err != nil {
		return nil, err
	}
	return s.reservationRepo.ListByOrganizer(ctx, organizer.ID)
}

func (s *AdServiceImpl) AvailableDates(ctx context.Context, adTypeID, eventID uuid.UUID) ([]time.Time, error) {
	adType, err := s.adTypeRepo.FindByID(ctx, adTypeID)
	if err != nil {
		return nil, err
	}

	start := model.DateOnly(s.now())
	end := start.AddDate(0, 0, s.windowDays)

	counts, err := s.reservationRepo.CountsInWindow(ctx, adTypeID, start, end)
	if err != nil {
		return nil, err
	}

	// eventID 在這裡只當過濾鍵用，不檢查存在性
	taken, err := s.reservationRepo.DatesForEvent(ctx, eventID, adTypeID, start, end)
	if err != nil {
		return nil, err
	}

	available := make([]time.Time, 0, s.windowDays+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := model.DateKey(d)
		if counts[key] >= adType.DailyCapacity {
			continue
		}
		if _, exists := taken[key]; exists {
			continue
		}
		available = append(available, d)
	}

	return available, nil
}

func (s *AdServiceImpl) ReserveDates(ctx context.Context, organizerUserID, adTypeID, eventID uuid.UUID, image string, dates []time.Time) ([]model.DateReservation, error) {
	organizer, err := s.directoryRepo.FindOrganizerByUserID(ctx, organizerUserID)
	if err != nil {
		return nil, err
	}
	event, err := s.directoryRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	adType, err := s.adTypeRepo.FindByID(ctx, adTypeID)
	if err != nil {
		return nil, err
	}

	results := make([]model.DateReservation, 0, len(dates))
	aborted := false
	for _, raw := range dates {
		date := model.DateOnly(raw)

		if aborted {
			results = append(results, model.DateReservation{Date: date, Outcome: model.DateOutcomeSkipped})
			continue
		}

		reservation, err := s.reserveOne(ctx, organizer, event, adType, image, date)
		switch {
		case err == nil:
			results = append(results, model.DateReservation{
				Date:        date,
				Outcome:     model.DateOutcomeCommitted,
				Reservation: reservation,
			})
		case errors.Is(err, apperrors.ErrAdDateCapacityFull) || errors.Is(err, apperrors.ErrDuplicateAdReservation):
			// 第一個被拒絕的日期之後不再處理，已提交的保留
			aborted = true
			results = append(results, model.DateReservation{
				Date:    date,
				Outcome: model.DateOutcomeRejected,
				Reason:  err.Error(),
			})
		default:
			return nil, err
		}
	}

	return results, nil
}

// reserveOne 單一日期的預約：Redis 閘門快速擋滿 → 交易內鎖 ad_types 資料列、
// 重新計數、寫入。容量裁決以交易內的計數為準，閘門只是省掉必敗的交易
func (s *AdServiceImpl) reserveOne(ctx context.Context, organizer *model.Organizer, event *model.Event, adType *model.AdType, image string, date time.Time) (*model.AdReservation, error) {
	log := logger.WithComponent("ad-service")

	gated := false
	if s.inventoryManager != nil {
		ok, err := s.inventoryManager.ReserveSlot(ctx, adType.ID, date, adType.DailyCapacity)
		if err != nil && !errors.Is(err, apperrors.ErrAdDateCapacityFull) {
			// Redis 掛掉時退化成純資料庫路徑
			log.Warn("slot gate unavailable, falling back to db check", zap.Error(err))
		} else if !ok {
			return nil, apperrors.ErrAdDateCapacityFull
		} else {
			gated = true
		}
	}

	reservation, err := s.reserveOneTx(ctx, organizer, event, adType, image, date)
	if err != nil {
		if gated {
			// 回滾閘門計數：用 context.Background() 確保一定執行
			if rbErr := s.inventoryManager.ReleaseSlot(context.Background(), adType.ID, date); rbErr != nil {
				log.Error("release slot failed", zap.Error(rbErr))
			}
		}
		return nil, err
	}

	if s.reservationQueue != nil {
		// 稽核回執：預約已提交，發佈失敗只記 log，不影響結果
		if pubErr := s.reservationQueue.PublishReservation(ctx, reservation); pubErr != nil {
			log.Error("publish reservation receipt failed",
				zap.String("reservation_id", reservation.ID.String()), zap.Error(pubErr))
		}
	}

	return reservation, nil
}

func (s *AdServiceImpl) reserveOneTx(ctx context.Context, organizer *model.Organizer, event *model.Event, adType *model.AdType, image string, date time.Time) (*model.AdReservation, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 鎖住 ad_types 資料列，同一廣告類型的併發預約在這裡排隊
	locked, err := s.adTypeRepo.FindByIDWithLock(ctx, tx, adType.ID)
	if err != nil {
		return nil, err
	}

	count, err := s.reservationRepo.CountByTypeAndDate(ctx, tx, adType.ID, date)
	if err != nil {
		return nil, err
	}
	if count >= locked.DailyCapacity {
		return nil, apperrors.ErrAdDateCapacityFull
	}

	reservation := &model.AdReservation{
		AdTypeID:    adType.ID,
		EventID:     event.ID,
		OrganizerID: organizer.ID,
		Image:       image,
		Status:      true,
		StartDate:   date,
		EndDate:     date, // 單日預約
	}

	// (ad_type_id, event_id, start_date) 唯一索引擋重複預約
	created, err := s.reservationRepo.Create(ctx, tx, reservation)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
