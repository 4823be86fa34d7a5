package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockSeatEntity_UnmarshalAll(t *testing.T) {
	raw := `{"block":"b1","seats":"all"}`

	var entity BlockSeatEntity
	require.NoError(t, json.Unmarshal([]byte(raw), &entity))

	assert.Equal(t, "b1", entity.Block)
	assert.True(t, entity.AllSeats)
	assert.Empty(t, entity.Seats)
}

func TestBlockSeatEntity_UnmarshalExplicit(t *testing.T) {
	raw := `{"block":"b1","seats":[{"id":"s1","status":"reserved"},{"id":"s2","status":"available"}]}`

	var entity BlockSeatEntity
	require.NoError(t, json.Unmarshal([]byte(raw), &entity))

	assert.Equal(t, "b1", entity.Block)
	assert.False(t, entity.AllSeats)
	require.Len(t, entity.Seats, 2)
	assert.Equal(t, SeatClaim{ID: "s1", Status: "reserved"}, entity.Seats[0])
}

func TestBlockSeatEntity_RoundTrip(t *testing.T) {
	// 線上格式必須原樣 round-trip
	cases := []string{
		`{"block":"b1","seats":"all"}`,
		`{"block":"b1","seats":[{"id":"s1","status":"reserved"}]}`,
		`{"block":"b1","seats":[]}`,
	}

	for _, raw := range cases {
		var entity BlockSeatEntity
		require.NoError(t, json.Unmarshal([]byte(raw), &entity))

		out, err := json.Marshal(entity)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}
}

func TestParseBlockSeatEntity_Malformed(t *testing.T) {
	cases := map[string]string{
		"seats literal other than all": `{"block":"b1","seats":"some"}`,
		"missing block":                `{"seats":"all"}`,
		"missing seats":                `{"block":"b1"}`,
		"numeric seat id":              `{"block":"b1","seats":[{"id":1,"status":"ok"}]}`,
		"seat without status":          `{"block":"b1","seats":[{"id":"s1"}]}`,
		"seats as object":              `{"block":"b1","seats":{"id":"s1"}}`,
		"block not a string":           `{"block":3,"seats":"all"}`,
		"not json":                     `oops`,
		"empty":                        ``,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := ParseBlockSeatEntity([]byte(raw))
			assert.False(t, ok)
		})
	}
}

func TestParseBlockSeatEntity_WellFormed(t *testing.T) {
	entity, ok := ParseBlockSeatEntity([]byte(`{"block":" b1 ","seats":"all"}`))
	require.True(t, ok)
	assert.Equal(t, " b1 ", entity.Block) // trim 是比對時做的，不動原始值
	assert.True(t, entity.AllSeats)
}

func TestBlockSeatEntity_SeatStatus(t *testing.T) {
	t.Run("all seats shortcut", func(t *testing.T) {
		entity := &BlockSeatEntity{Block: "b1", AllSeats: true}
		assert.Equal(t, SeatStatusAvailable, entity.SeatStatus("anything"))
	})

	t.Run("recorded status wins", func(t *testing.T) {
		entity := &BlockSeatEntity{Block: "b1", Seats: []SeatClaim{{ID: "s1", Status: "reserved"}}}
		assert.Equal(t, SeatStatusReserved, entity.SeatStatus("s1"))
	})

	t.Run("unlisted seat defaults to reserved", func(t *testing.T) {
		entity := &BlockSeatEntity{Block: "b1", Seats: []SeatClaim{{ID: "s1", Status: "available"}}}
		assert.Equal(t, SeatStatusAvailable, entity.SeatStatus("s1"))
		assert.Equal(t, SeatStatusReserved, entity.SeatStatus("s2"))
	})
}

func TestBlockSeatEntity_ClaimedSeats(t *testing.T) {
	all := &BlockSeatEntity{Block: "b1", AllSeats: true}
	_, isAll := all.ClaimedSeats()
	assert.True(t, isAll)

	explicit := &BlockSeatEntity{Block: "b1", Seats: []SeatClaim{{ID: "s1", Status: "x"}, {ID: "s2", Status: "y"}}}
	n, isAll := explicit.ClaimedSeats()
	assert.False(t, isAll)
	assert.Equal(t, 2, n)
}
