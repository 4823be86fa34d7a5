package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"soly-ticketing/config"
	"soly-ticketing/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB 是測試用的資料庫連接池
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	// 確保資料庫連接正常
	if err := testDB.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}

	log.Println("Test database connected successfully")
	log.Println("Running repository tests...")

	code := m.Run()
	testDB.Close()
	log.Println("Test database closed")

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) func() {
	t.Helper()
	ctx := context.Background()

	// 清空所有測試資料，保留 schema
	_, err := testDB.Exec(ctx, "TRUNCATE ad_reservation_audits, ad_reservations, ticket_categories, seats, seating_blocks, events, organizers, locations, ad_types RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}

	return func() {
	}
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

func createTestLocation(t *testing.T, name string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := testDB.QueryRow(ctx, `INSERT INTO locations (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test location: %v", err)
	}
	return id
}

func createTestOrganizer(t *testing.T, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := testDB.QueryRow(ctx, `INSERT INTO organizers (user_id, name) VALUES ($1, $2) RETURNING id`, userID, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test organizer: %v", err)
	}
	return id
}

func createTestEvent(t *testing.T, locationID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := testDB.QueryRow(ctx, `INSERT INTO events (name, location_id) VALUES ($1, $2) RETURNING id`, name, locationID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

func createTestAdType(t *testing.T, name string, dailyCapacity int, price float64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := testDB.QueryRow(ctx, `INSERT INTO ad_types (name, daily_capacity, price) VALUES ($1, $2, $3) RETURNING id`, name, dailyCapacity, price).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test ad type: %v", err)
	}
	return id
}

func createTestTicketCategory(t *testing.T, eventID uuid.UUID, name string, blockSeatJSON *string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := testDB.QueryRow(ctx, `INSERT INTO ticket_categories (event_id, name, price, quantity, block_seat_entity) VALUES ($1, $2, 100, 10, $3) RETURNING id`, eventID, name, blockSeatJSON).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test ticket category: %v", err)
	}
	return id
}
