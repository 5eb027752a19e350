//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-pricing/internal/handler/api"
	reqdto "hotel-pricing/internal/handler/dto/request"
	resdto "hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"
	commonhttp "hotel-pricing/tests/common/httptest"
	commandsmock "hotel-pricing/tests/mock/commands"
	queriesmock "hotel-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockQueries  *queriesmock.MockPricingQueries
	mockCommands *commandsmock.MockPricingCommands
	router       *gin.Engine
}

func TestPricingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.ctrl)
	s.mockCommands = commandsmock.NewMockPricingCommands(s.ctrl)

	handler := api.NewPricingHandler(s.mockQueries, s.mockCommands)
	s.router = gin.New()
	s.router.GET("/api/pricing/suggest/:roomId", handler.GetSuggestion)
	s.router.POST("/api/pricing/apply", handler.ApplyPrice)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PricingHandlerTestSuite) suggestionView() *queries.SuggestionView {
	return &queries.SuggestionView{
		RoomID:         1,
		TargetDate:     time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC),
		SuggestedPrice: decimal.RequireFromString("1500.00"),
		Currency:       "MXN",
		BasePriceUsed:  decimal.NewFromInt(1000),
		AvgOccupancy:   50,
		HadHistory:     true,
		PriceSource:    "base_price",
	}
}

func (s *PricingHandlerTestSuite) TestGetSuggestion_Success() {
	s.mockQueries.EXPECT().
		Suggest(gomock.Any(), int64(1), gomock.Nil()).
		Return(s.suggestionView(), nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/suggest/1", nil, "")

	var resp resdto.SuggestionResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(1), resp.RoomID)
	s.Equal("2027-07-10", resp.TargetDate)
	s.InDelta(1500.00, resp.SuggestedPrice, 0.001)
	s.Equal("MXN", resp.Currency)
	s.Equal("base_price", resp.PriceSource)
	s.True(resp.HadHistory)
	s.Nil(resp.ModelVersion)
}

func (s *PricingHandlerTestSuite) TestGetSuggestion_WithDateQuery() {
	wantDate := time.Date(2027, time.December, 24, 0, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().
		Suggest(gomock.Any(), int64(1), gomock.Cond(func(d *time.Time) bool {
			return d != nil && d.Equal(wantDate)
		})).
		Return(s.suggestionView(), nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/suggest/1?date=2027-12-24", nil, "")

	var resp resdto.SuggestionResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
}

func (s *PricingHandlerTestSuite) TestGetSuggestion_InvalidRoomID() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/suggest/abc", nil, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid room ID")
}

func (s *PricingHandlerTestSuite) TestGetSuggestion_InvalidDate() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/suggest/1?date=24-12-2027", nil, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
}

func (s *PricingHandlerTestSuite) TestGetSuggestion_RoomNotFound() {
	s.mockQueries.EXPECT().
		Suggest(gomock.Any(), int64(99), gomock.Nil()).
		Return(nil, queries.ErrRoomNotFound)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/suggest/99", nil, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
}

func (s *PricingHandlerTestSuite) TestGetSuggestion_InternalError() {
	s.mockQueries.EXPECT().
		Suggest(gomock.Any(), int64(1), gomock.Nil()).
		Return(nil, errs.New("boom"))

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/suggest/1", nil, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
}

func (s *PricingHandlerTestSuite) TestApplyPrice_Success() {
	req := reqdto.ApplyPriceRequest{
		RoomID:   1,
		NewPrice: decimal.RequireFromString("1500.00"),
		Date:     "2027-07-10",
	}
	result := &commands.ApplyPriceResult{
		HistoryID: 42,
		RoomID:    1,
		NewPrice:  decimal.RequireFromString("1500.00"),
		Date:      time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC),
	}
	// Decimals lose their exponent on the JSON round-trip, so the request
	// must be matched by value, not with DeepEqual.
	s.mockCommands.EXPECT().
		ApplyPrice(gomock.Any(), gomock.Cond(func(got reqdto.ApplyPriceRequest) bool {
			return got.RoomID == req.RoomID &&
				got.NewPrice.Equal(req.NewPrice) &&
				got.Date == req.Date
		})).
		Return(result, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/pricing/apply", req, "")

	var resp resdto.ApplyPriceResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(int64(42), resp.HistoryID)
	s.Equal(int64(1), resp.RoomID)
	s.InDelta(1500.00, resp.NewPrice, 0.001)
	s.Equal("2027-07-10", resp.Date)
}

func (s *PricingHandlerTestSuite) TestApplyPrice_MalformedBody() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/pricing/apply", map[string]any{
		"room_id": 1,
	}, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *PricingHandlerTestSuite) TestApplyPrice_InvalidCommitInput() {
	s.mockCommands.EXPECT().
		ApplyPrice(gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrInvalidCommitInput)

	req := reqdto.ApplyPriceRequest{RoomID: 1, NewPrice: decimal.NewFromInt(-5), Date: "2027-07-10"}
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/pricing/apply", req, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid price commit input")
}

func (s *PricingHandlerTestSuite) TestApplyPrice_RoomNotFound() {
	s.mockCommands.EXPECT().
		ApplyPrice(gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrRoomNotFound)

	req := reqdto.ApplyPriceRequest{RoomID: 99, NewPrice: decimal.NewFromInt(100), Date: "2027-07-10"}
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/pricing/apply", req, "")
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
}
