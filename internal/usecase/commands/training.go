package commands

import (
	"context"
	"time"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrPredictorUnavailable = errs.New("price predictor unavailable")
	ErrTrainingFailed       = errs.New("training export failed")
)

// TrainingRow is one observed night with the room attributes the model
// learns from. Only rows with a positive price are exported.
type TrainingRow struct {
	RoomID           int64           `json:"roomId"`
	Date             time.Time       `json:"date"`
	Price            decimal.Decimal `json:"price"`
	OccupancyPercent int             `json:"occupancyPercent"`
	DayOfWeek        int             `json:"dayOfWeek"`
	Month            int             `json:"month"`
	IsWeekend        bool            `json:"isWeekend"`
	Capacity         int             `json:"capacity"`
	HasSeaView       bool            `json:"hasSeaView"`
	HasBalcony       bool            `json:"hasBalcony"`
}

type TrainingResult struct {
	RowsExported int
}

type TrainingDataReadStore interface {
	TrainingRows(ctx context.Context, since time.Time) ([]TrainingRow, error)
}

// Trainer pushes a training set to the external predictor. Unlike prediction,
// training failures surface to the caller so the operator sees them.
type Trainer interface {
	Enabled() bool
	Train(ctx context.Context, rows []TrainingRow) error
}

type TrainingCommands interface {
	ExportAndTrain(ctx context.Context) (*TrainingResult, error)
}

type trainingCommandsImpl struct {
	readStore TrainingDataReadStore
	trainer   Trainer
	clock     clock.Clock
}

func NewTrainingCommands(readStore TrainingDataReadStore, trainer Trainer, clk clock.Clock) TrainingCommands {
	return &trainingCommandsImpl{
		readStore: readStore,
		trainer:   trainer,
		clock:     clk,
	}
}

func (c *trainingCommandsImpl) ExportAndTrain(ctx context.Context) (*TrainingResult, error) {
	if c.trainer == nil || !c.trainer.Enabled() {
		return nil, ErrPredictorUnavailable
	}

	since := c.clock.Now().UTC().AddDate(0, 0, -pricing.TrainingWindowDays)
	rows, err := c.readStore.TrainingRows(ctx, since)
	if err != nil {
		return nil, errs.Mark(err, ErrTrainingFailed)
	}
	if len(rows) == 0 {
		return &TrainingResult{RowsExported: 0}, nil
	}

	if err := c.trainer.Train(ctx, rows); err != nil {
		return nil, errs.Mark(err, ErrTrainingFailed)
	}
	return &TrainingResult{RowsExported: len(rows)}, nil
}
