package worker

import (
	"context"

	"soly-ticketing/internal/queue"
	"soly-ticketing/internal/repository"
	"soly-ticketing/pkg/logger"

	"go.uber.org/zap"
)

// AuditWorker 消費預約回執並寫入稽核表。寫入失敗 Nack(requeue) 延遲重試
type AuditWorker interface {
	Start(ctx context.Context) error
}

type AuditWorkerImpl struct {
	auditRepo repository.AuditRepository
	queue     queue.ReservationQueue
}

func NewAuditWorker(auditRepo repository.AuditRepository, queue queue.ReservationQueue) AuditWorker {
	return &AuditWorkerImpl{
		auditRepo: auditRepo,
		queue:     queue,
	}
}

func (w *AuditWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeReservations(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("audit-worker")
		for msg := range msgs {
			reservation := msg.Data
			audit := &repository.ReservationAudit{
				ReservationID: reservation.ID,
				AdTypeID:      reservation.AdTypeID,
				EventID:       reservation.EventID,
				OrganizerID:   reservation.OrganizerID,
				ReservedDate:  reservation.StartDate,
			}

			if err := w.auditRepo.Insert(ctx, audit); err != nil {
				log.Warn("insert audit failed, requeue",
					zap.String("reservation_id", reservation.ID.String()), zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}
