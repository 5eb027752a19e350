//go:build unit

package predictor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-pricing/internal/infra/predictor"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *predictor.Client {
	return predictor.NewClient(config.PredictorConfig{
		BaseURL: baseURL,
		Timeout: time.Second,
	})
}

func sampleFeatures() queries.PredictionFeatures {
	return queries.PredictionFeatures{
		RoomID:         1,
		BasePrice:      decimal.NewFromInt(1000),
		HotelOccupancy: 50,
		DayOfWeek:      int(time.Saturday),
		Month:          7,
		IsWeekend:      true,
		Capacity:       2,
		HasSeaView:     true,
	}
}

func TestPredict_Success(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictedPrice": "1487.33",
			"modelVersion":   "v3",
		})
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	p, ok := c.Predict(context.Background(), sampleFeatures())

	require.True(t, ok)
	require.True(t, decimal.RequireFromString("1487.33").Equal(p.PredictedPrice))
	require.Equal(t, "v3", p.ModelVersion)

	require.Equal(t, float64(1), captured["roomId"])
	require.Equal(t, float64(50), captured["hotelOccupancy"])
	require.Equal(t, float64(6), captured["dayOfWeek"])
	require.Equal(t, float64(7), captured["month"])
	require.Equal(t, true, captured["isWeekend"])
	require.Equal(t, true, captured["hasSeaView"])
}

func TestPredict_DisabledClient(t *testing.T) {
	c := newClient("")
	require.False(t, c.Enabled())

	p, ok := c.Predict(context.Background(), sampleFeatures())
	require.False(t, ok)
	require.Nil(t, p)
}

func TestPredict_ServerErrorIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, ok := newClient(srv.URL).Predict(context.Background(), sampleFeatures())
	require.False(t, ok)
}

func TestPredict_MalformedResponseIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, ok := newClient(srv.URL).Predict(context.Background(), sampleFeatures())
	require.False(t, ok)
}

func TestPredict_NonPositivePriceIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictedPrice": "0",
			"modelVersion":   "v3",
		})
	}))
	defer srv.Close()

	_, ok := newClient(srv.URL).Predict(context.Background(), sampleFeatures())
	require.False(t, ok)
}

func TestTrain_PostsRows(t *testing.T) {
	var payload struct {
		Rows []map[string]any `json:"rows"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/train", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rows := []commands.TrainingRow{
		{
			RoomID:           1,
			Date:             time.Date(2027, time.July, 9, 0, 0, 0, 0, time.UTC),
			Price:            decimal.NewFromInt(1400),
			OccupancyPercent: 80,
			DayOfWeek:        int(time.Friday),
			Month:            7,
			IsWeekend:        true,
			Capacity:         2,
			HasSeaView:       true,
			HasBalcony:       false,
		},
	}

	err := newClient(srv.URL).Train(context.Background(), rows)
	require.NoError(t, err)

	require.Len(t, payload.Rows, 1)
	row := payload.Rows[0]
	require.Equal(t, float64(1), row["roomId"])
	require.Equal(t, "2027-07-09T00:00:00Z", row["date"])
	require.Equal(t, float64(80), row["occupancyPercent"])
	require.Equal(t, true, row["isWeekend"])
}

func TestTrain_ServerErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newClient(srv.URL).Train(context.Background(), nil)
	require.Error(t, err)
}

func TestTrain_DisabledClientFails(t *testing.T) {
	err := newClient("").Train(context.Background(), nil)
	require.Error(t, err)
}
