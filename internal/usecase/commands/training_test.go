//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeTrainingStore struct {
	rows      []commands.TrainingRow
	since     time.Time
	returnErr error
}

func (s *fakeTrainingStore) TrainingRows(ctx context.Context, since time.Time) ([]commands.TrainingRow, error) {
	s.since = since
	if s.returnErr != nil {
		return nil, s.returnErr
	}
	return s.rows, nil
}

type fakeTrainer struct {
	enabled  bool
	trained  []commands.TrainingRow
	trainErr error
	calls    int
}

func (t *fakeTrainer) Enabled() bool { return t.enabled }

func (t *fakeTrainer) Train(ctx context.Context, rows []commands.TrainingRow) error {
	t.calls++
	t.trained = rows
	return t.trainErr
}

func sampleRows(n int) []commands.TrainingRow {
	rows := make([]commands.TrainingRow, n)
	for i := range rows {
		rows[i] = commands.TrainingRow{
			RoomID: int64(i + 1),
			Date:   time.Date(2027, time.July, 9, 0, 0, 0, 0, time.UTC),
			Price:  decimal.NewFromInt(1400),
		}
	}
	return rows
}

func TestExportAndTrain_Success(t *testing.T) {
	now := time.Date(2027, time.July, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeTrainingStore{rows: sampleRows(3)}
	trainer := &fakeTrainer{enabled: true}
	cmd := commands.NewTrainingCommands(store, trainer, clock.NewMockClock(now))

	res, err := cmd.ExportAndTrain(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, res.RowsExported)
	require.Len(t, trainer.trained, 3)

	wantSince := now.AddDate(0, 0, -180)
	require.True(t, wantSince.Equal(store.since), "export window: got %s", store.since)
}

func TestExportAndTrain_PredictorDisabled(t *testing.T) {
	cmd := commands.NewTrainingCommands(&fakeTrainingStore{}, &fakeTrainer{enabled: false}, clock.NewMockClock(time.Now()))

	_, err := cmd.ExportAndTrain(context.Background())
	require.True(t, errs.Is(err, commands.ErrPredictorUnavailable), "got %v", err)
}

func TestExportAndTrain_NoRowsSkipsTraining(t *testing.T) {
	trainer := &fakeTrainer{enabled: true}
	cmd := commands.NewTrainingCommands(&fakeTrainingStore{}, trainer, clock.NewMockClock(time.Now()))

	res, err := cmd.ExportAndTrain(context.Background())
	require.NoError(t, err)
	require.Zero(t, res.RowsExported)
	require.Zero(t, trainer.calls, "empty exports must not hit the predictor")
}

func TestExportAndTrain_ReadFailure(t *testing.T) {
	store := &fakeTrainingStore{returnErr: errs.New("db down")}
	cmd := commands.NewTrainingCommands(store, &fakeTrainer{enabled: true}, clock.NewMockClock(time.Now()))

	_, err := cmd.ExportAndTrain(context.Background())
	require.True(t, errs.Is(err, commands.ErrTrainingFailed), "got %v", err)
}

func TestExportAndTrain_TrainFailure(t *testing.T) {
	store := &fakeTrainingStore{rows: sampleRows(1)}
	trainer := &fakeTrainer{enabled: true, trainErr: errs.New("predictor returned status 502")}
	cmd := commands.NewTrainingCommands(store, trainer, clock.NewMockClock(time.Now()))

	_, err := cmd.ExportAndTrain(context.Background())
	require.True(t, errs.Is(err, commands.ErrTrainingFailed), "got %v", err)
}
