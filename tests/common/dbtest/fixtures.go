//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"hotel-pricing/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every fixture user can log in with.
const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err)

	var userID uuid.UUID
	err = db.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash, full_name, role, is_active)
		 VALUES ($1, $2, 'Test User', $3, true)
		 RETURNING id`,
		email, hash, role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name string, stars int) int64 {
	t.Helper()

	var hotelID int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO hotels (name, city, state, stars)
		 VALUES ($1, 'Cancun', 'Quintana Roo', $2)
		 RETURNING id`,
		name, stars).Scan(&hotelID)
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID int64, number string, basePrice decimal.Decimal, capacity int, seaView, balcony bool) int64 {
	t.Helper()

	var roomID int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO rooms (hotel_id, room_number, base_price, capacity, has_sea_view, has_balcony)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		hotelID, number, basePrice, capacity, seaView, balcony).Scan(&roomID)
	require.NoError(t, err)
	return roomID
}

func InsertHistory(t *testing.T, db DBLike, roomID int64, date time.Time, price decimal.Decimal, occupancy int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO price_history (room_id, date, price, occupancy_percent)
		 VALUES ($1, $2, $3, $4)`,
		roomID, date, price, occupancy)
	require.NoError(t, err)
}

// truncates all tables so each test starts from a clean slate
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		`TRUNCATE price_history, rooms, hotels, users RESTART IDENTITY CASCADE`)
	return err
}
