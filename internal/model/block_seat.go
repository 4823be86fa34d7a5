package model

import (
	"encoding/json"
	"errors"
)

// SeatClaim 票種對單一座位的宣告
type SeatClaim struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// BlockSeatEntity 票種與座位區塊的對應，存在 ticket_categories.block_seat_entity (jsonb)。
// 兩種線上格式，必須原樣 round-trip：
//
//	{"block":"<blockId>","seats":"all"}
//	{"block":"<blockId>","seats":[{"id":"<seatId>","status":"<status>"}, ...]}
//
// "all" 表示整個區塊都由該票種認領
type BlockSeatEntity struct {
	Block    string
	AllSeats bool
	Seats    []SeatClaim

	statusByID map[string]string
}

var errMalformedBlockSeat = errors.New("malformed block seat entity")

type blockSeatWire struct {
	Block *string         `json:"block"`
	Seats json.RawMessage `json:"seats"`
}

func (e *BlockSeatEntity) UnmarshalJSON(data []byte) error {
	var wire blockSeatWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Block == nil || len(wire.Seats) == 0 {
		return errMalformedBlockSeat
	}

	var literal string
	if err := json.Unmarshal(wire.Seats, &literal); err == nil {
		if literal != "all" {
			return errMalformedBlockSeat
		}
		*e = BlockSeatEntity{Block: *wire.Block, AllSeats: true}
		return nil
	}

	// 逐筆驗證 id 與 status 都是字串，缺欄位視為格式錯誤
	var rawSeats []map[string]json.RawMessage
	if err := json.Unmarshal(wire.Seats, &rawSeats); err != nil {
		return errMalformedBlockSeat
	}
	claims := make([]SeatClaim, 0, len(rawSeats))
	index := make(map[string]string, len(rawSeats))
	for _, raw := range rawSeats {
		var claim SeatClaim
		if !decodeStringField(raw, "id", &claim.ID) || !decodeStringField(raw, "status", &claim.Status) {
			return errMalformedBlockSeat
		}
		claims = append(claims, claim)
		index[claim.ID] = claim.Status
	}

	*e = BlockSeatEntity{Block: *wire.Block, Seats: claims, statusByID: index}
	return nil
}

func decodeStringField(raw map[string]json.RawMessage, key string, dst *string) bool {
	val, ok := raw[key]
	if !ok {
		return false
	}
	return json.Unmarshal(val, dst) == nil
}

func (e BlockSeatEntity) MarshalJSON() ([]byte, error) {
	if e.AllSeats {
		return json.Marshal(struct {
			Block string `json:"block"`
			Seats string `json:"seats"`
		}{Block: e.Block, Seats: "all"})
	}
	seats := e.Seats
	if seats == nil {
		seats = []SeatClaim{}
	}
	return json.Marshal(struct {
		Block string      `json:"block"`
		Seats []SeatClaim `json:"seats"`
	}{Block: e.Block, Seats: seats})
}

// ParseBlockSeatEntity 在儲存層邊界解碼一次。格式錯誤回傳 ok=false，
// 呼叫端把它當成「沒有對應」處理，不是硬錯誤
func ParseBlockSeatEntity(raw []byte) (*BlockSeatEntity, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var entity BlockSeatEntity
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, false
	}
	return &entity, true
}

// SeatStatus 座位對此票種的狀態："all" 一律 available，
// 名單內用紀錄的狀態，名單外預設 reserved
func (e *BlockSeatEntity) SeatStatus(seatID string) SeatStatus {
	if e.AllSeats {
		return SeatStatusAvailable
	}
	if e.statusByID == nil && len(e.Seats) > 0 {
		e.statusByID = make(map[string]string, len(e.Seats))
		for _, claim := range e.Seats {
			e.statusByID[claim.ID] = claim.Status
		}
	}
	if status, ok := e.statusByID[seatID]; ok && status != "" {
		return SeatStatus(status)
	}
	return SeatStatusReserved
}

// ClaimedSeats 此票種認領的座位數；"all" 由呼叫端以區塊容量計算
func (e *BlockSeatEntity) ClaimedSeats() (int, bool) {
	if e.AllSeats {
		return 0, true
	}
	return len(e.Seats), false
}
