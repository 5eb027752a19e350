package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "hotel-pricing/internal/handler/dto/request"
	resdto "hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/commands"
	"hotel-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const suggestDateLayout = "2006-01-02"

type PricingHandler struct {
	pricingQueries  queries.PricingQueries
	pricingCommands commands.PricingCommands
}

func NewPricingHandler(pricingQueries queries.PricingQueries, pricingCommands commands.PricingCommands) *PricingHandler {
	return &PricingHandler{
		pricingQueries:  pricingQueries,
		pricingCommands: pricingCommands,
	}
}

// @Summary Get price suggestion
// @Description Compute a nightly price suggestion for a room
// @Tags pricing
// @Produce json
// @Param roomId path int true "Room ID"
// @Param date query string false "Target date (YYYY-MM-DD), defaults to tomorrow"
// @Success 200 {object} resdto.SuggestionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/suggest/{roomId} [get]
func (h *PricingHandler) GetSuggestion(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("roomId"), 10, 64)
	if err != nil || roomID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var targetDate *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, parseErr := time.ParseInLocation(suggestDateLayout, dateStr, time.UTC)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		targetDate = &parsed
	}

	suggestion, err := h.pricingQueries.Suggest(c.Request.Context(), roomID, targetDate)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSuggestionView(suggestion))
}

// @Summary Apply suggested price
// @Description Commit a price as the room's new reference price
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyPriceRequest true "Price commit request"
// @Success 200 {object} resdto.ApplyPriceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/apply [post]
func (h *PricingHandler) ApplyPrice(c *gin.Context) {
	var req reqdto.ApplyPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.pricingCommands.ApplyPrice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCommitInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid price commit input",
			})
		case errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromApplyPriceResult(result))
}
