package queue

import (
	"context"

	"soly-ticketing/internal/model"
)

type Delivery struct {
	Data *model.AdReservation
	Ack  func()
	Nack func(requeue bool)
}

// ReservationQueue 已提交的廣告預約回執隊列，worker 消費後寫入稽核表
type ReservationQueue interface {
	PublishReservation(ctx context.Context, reservation *model.AdReservation) error
	SubscribeReservations(ctx context.Context) (<-chan Delivery, error)
}

// ReservationQueueImpl 用 Go channel 模擬 MQ，開發與單元測試用
type ReservationQueueImpl struct {
	ch chan *model.AdReservation
}

func NewReservationQueue(bufferSize int) ReservationQueue {
	return &ReservationQueueImpl{
		ch: make(chan *model.AdReservation, bufferSize),
	}
}

func (q *ReservationQueueImpl) PublishReservation(ctx context.Context, reservation *model.AdReservation) error {
	select {
	case q.ch <- reservation:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ReservationQueueImpl) SubscribeReservations(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case reservation, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: reservation,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- reservation // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
