package shared

import (
	"context"
	"time"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/domain/room"
	"hotel-pricing/internal/domain/user"
	"hotel-pricing/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx hands out repositories bound to the open transaction, so a price
// commit's two effects (history append + reference price update) either
// both land or neither does.
type Tx interface {
	Rooms() RoomRepository
	Hotels() HotelRepository
	History() PriceHistoryRepository
	Users() UserRepository
	DB() db.DBTX
}

// NewHistoryEntry is the write model for appending a price history row.
// OccupancyPercent 0 marks the entry as not yet reconciled with bookings.
type NewHistoryEntry struct {
	RoomID             int64
	Date               time.Time
	Price              decimal.Decimal
	OccupancyPercent   int
	PredictedPrice     *decimal.Decimal
	PredictedOccupancy *int
}

type RoomUpdate struct {
	BasePrice  decimal.Decimal
	Capacity   int
	HasSeaView bool
	HasBalcony bool
}

type NewUser struct {
	Email        string
	PasswordHash string
	FullName     string
	Role         user.Role
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (int64, error)
	Update(ctx context.Context, id int64, up RoomUpdate) error
	SoftDelete(ctx context.Context, id int64) error
	UpdateBasePrice(ctx context.Context, id int64, price decimal.Decimal) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (int64, error)
}

type PriceHistoryRepository interface {
	Append(ctx context.Context, entry NewHistoryEntry) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, params NewUser) (uuid.UUID, error)
}
