package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

const (
	predictPath = "/predict"
	trainPath   = "/train"
)

// Client talks to the external price prediction service. An empty base URL
// disables it and every Predict call reports ok=false.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(cfg config.PredictorConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

type predictRequest struct {
	RoomID         int64           `json:"roomId"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	HotelOccupancy float64         `json:"hotelOccupancy"`
	DayOfWeek      int             `json:"dayOfWeek"`
	Month          int             `json:"month"`
	IsWeekend      bool            `json:"isWeekend"`
	Capacity       int             `json:"capacity"`
	HasSeaView     bool            `json:"hasSeaView"`
}

type predictResponse struct {
	PredictedPrice decimal.Decimal `json:"predictedPrice"`
	ModelVersion   string          `json:"modelVersion"`
}

func (c *Client) Predict(ctx context.Context, features queries.PredictionFeatures) (*queries.Prediction, bool) {
	if !c.Enabled() {
		return nil, false
	}

	body := predictRequest{
		RoomID:         features.RoomID,
		BasePrice:      features.BasePrice,
		HotelOccupancy: features.HotelOccupancy,
		DayOfWeek:      features.DayOfWeek,
		Month:          features.Month,
		IsWeekend:      features.IsWeekend,
		Capacity:       features.Capacity,
		HasSeaView:     features.HasSeaView,
	}

	var resp predictResponse
	if err := c.postJSON(ctx, predictPath, body, &resp); err != nil {
		slog.Warn("predictor unavailable, keeping rule-based price",
			"room_id", features.RoomID, "error", err.Error())
		return nil, false
	}
	if !resp.PredictedPrice.IsPositive() {
		slog.Warn("predictor returned non-positive price, keeping rule-based price",
			"room_id", features.RoomID)
		return nil, false
	}

	return &queries.Prediction{
		PredictedPrice: resp.PredictedPrice,
		ModelVersion:   resp.ModelVersion,
	}, true
}

type trainRequest struct {
	Rows []commands.TrainingRow `json:"rows"`
}

func (c *Client) Train(ctx context.Context, rows []commands.TrainingRow) error {
	if !c.Enabled() {
		return errs.New("predictor base URL not configured")
	}
	return c.postJSON(ctx, trainPath, trainRequest{Rows: rows}, nil)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode predictor request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build predictor request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return errs.Wrap(err, "predictor request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New(fmt.Sprintf("predictor returned status %d", resp.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode predictor response")
	}
	return nil
}
