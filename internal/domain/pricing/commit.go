package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCommitRoom = errors.New("room id is required")
	ErrNonPositivePrice  = errors.New("committed price must be positive")
	ErrMissingCommitDate = errors.New("commit date is required")
)

// Commit is a validated request to make a suggested price the room's new
// reference price for a given night.
type Commit struct {
	roomID int64
	price  decimal.Decimal
	date   time.Time
}

func NewCommit(roomID int64, price decimal.Decimal, date time.Time) (Commit, error) {
	if roomID <= 0 {
		return Commit{}, ErrInvalidCommitRoom
	}
	if !price.IsPositive() {
		return Commit{}, ErrNonPositivePrice
	}
	if date.IsZero() {
		return Commit{}, ErrMissingCommitDate
	}
	return Commit{roomID: roomID, price: RoundPrice(price), date: date}, nil
}

func (c Commit) RoomID() int64 {
	return c.roomID
}

func (c Commit) Price() decimal.Decimal {
	return c.price
}

func (c Commit) Date() time.Time {
	return c.date
}
