package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soly-ticketing/internal/model"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slotTTL 窗口外的計數器不需要保留，給足 14 天窗口加一點餘裕
const slotTTL = 16 * 24 * time.Hour

// AdSlotInventoryManager 以 Redis 做 (廣告類型, 日期) 的容量快速閘門。
// 計數器只是擋掉明顯搶不到的請求，真正的容量裁決在資料庫交易裡
type AdSlotInventoryManager interface {
	// ReserveSlot 原子地檢查並遞增當日計數 (Lua)，滿了回傳 false
	ReserveSlot(ctx context.Context, adTypeID uuid.UUID, date time.Time, capacity int) (bool, error)
	// ReleaseSlot 資料庫交易失敗時回滾計數
	ReleaseSlot(ctx context.Context, adTypeID uuid.UUID, date time.Time) error
	SlotCount(ctx context.Context, adTypeID uuid.UUID, date time.Time) (int, error)
}

type AdSlotInventoryManagerImpl struct {
	client *redis.Client
}

func NewAdSlotInventoryManager(client *redis.Client) AdSlotInventoryManager {
	return &AdSlotInventoryManagerImpl{
		client: client,
	}
}

func (m *AdSlotInventoryManagerImpl) slotKey(adTypeID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("ad:%s:%s:count", adTypeID, model.DateKey(date))
}

func (m *AdSlotInventoryManagerImpl) ReserveSlot(ctx context.Context, adTypeID uuid.UUID, date time.Time, capacity int) (bool, error) {
	key := m.slotKey(adTypeID, date)

	script := `
		local key = KEYS[1]
		local capacity = tonumber(ARGV[1])
		local ttl = tonumber(ARGV[2])

		local current = tonumber(redis.call('GET', key) or '0')
		if current >= capacity then
			return -1
		end

		current = redis.call('INCR', key)
		if current == 1 then
			redis.call('EXPIRE', key, ttl)
		end
		return current
	`

	result, err := m.client.Eval(ctx, script, []string{key}, capacity, int(slotTTL.Seconds())).Result()
	if err != nil {
		return false, err
	}

	code, ok := result.(int64)
	if !ok {
		return false, errors.New("unexpected result")
	}
	if code == -1 {
		return false, apperrors.ErrAdDateCapacityFull
	}
	return true, nil
}

func (m *AdSlotInventoryManagerImpl) ReleaseSlot(ctx context.Context, adTypeID uuid.UUID, date time.Time) error {
	key := m.slotKey(adTypeID, date)

	// 不讓計數掉到負數
	script := `
		local key = KEYS[1]
		local current = tonumber(redis.call('GET', key) or '0')
		if current > 0 then
			redis.call('DECR', key)
		end
		return 1
	`

	return m.client.Eval(ctx, script, []string{key}).Err()
}

func (m *AdSlotInventoryManagerImpl) SlotCount(ctx context.Context, adTypeID uuid.UUID, date time.Time) (int, error) {
	val, err := m.client.Get(ctx, m.slotKey(adTypeID, date)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}
