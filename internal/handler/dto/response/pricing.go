package response

import (
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type SuggestionResponse struct {
	RoomID         int64   `json:"roomId"`
	TargetDate     string  `json:"targetDate"`
	SuggestedPrice float64 `json:"suggestedPrice"`
	Currency       string  `json:"currency"`
	BasePriceUsed  float64 `json:"basePriceUsed"`
	AvgOccupancy   float64 `json:"avgOccupancy"`
	HadHistory     bool    `json:"hadHistory"`
	PriceSource    string  `json:"priceSource"`
	ModelVersion   *string `json:"modelVersion,omitempty"`
}

func FromSuggestionView(v *queries.SuggestionView) *SuggestionResponse {
	return &SuggestionResponse{
		RoomID:         v.RoomID,
		TargetDate:     v.TargetDate.Format(dateLayout),
		SuggestedPrice: v.SuggestedPrice.InexactFloat64(),
		Currency:       v.Currency,
		BasePriceUsed:  v.BasePriceUsed.InexactFloat64(),
		AvgOccupancy:   v.AvgOccupancy,
		HadHistory:     v.HadHistory,
		PriceSource:    v.PriceSource,
		ModelVersion:   v.ModelVersion,
	}
}

type ApplyPriceResponse struct {
	HistoryID int64   `json:"historyId"`
	RoomID    int64   `json:"roomId"`
	NewPrice  float64 `json:"newPrice"`
	Date      string  `json:"date"`
}

func FromApplyPriceResult(r *commands.ApplyPriceResult) *ApplyPriceResponse {
	return &ApplyPriceResponse{
		HistoryID: r.HistoryID,
		RoomID:    r.RoomID,
		NewPrice:  r.NewPrice.InexactFloat64(),
		Date:      r.Date.Format(dateLayout),
	}
}

type TrainingResponse struct {
	RowsExported int `json:"rowsExported"`
}

func FromTrainingResult(r *commands.TrainingResult) *TrainingResponse {
	return &TrainingResponse{RowsExported: r.RowsExported}
}
