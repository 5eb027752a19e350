package api

import (
	"net/http"

	resdto "hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	trainingCommands commands.TrainingCommands
}

func NewTrainingHandler(trainingCommands commands.TrainingCommands) *TrainingHandler {
	return &TrainingHandler{
		trainingCommands: trainingCommands,
	}
}

// @Summary Train price model
// @Description Export recent price history and send it to the predictor for training
// @Tags ml
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TrainingResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ml/train [post]
func (h *TrainingHandler) Train(c *gin.Context) {
	result, err := h.trainingCommands.ExportAndTrain(c.Request.Context())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPredictorUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Price predictor is not configured",
			})
		case errs.Is(err, commands.ErrTrainingFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Training export failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTrainingResult(result))
}
