package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase"
)

type CountdownHandler struct {
	countdownUC *usecase.CountdownUseCase
	logger      *zap.Logger
}

func NewCountdownHandler(countdownUC *usecase.CountdownUseCase, logger *zap.Logger) *CountdownHandler {
	return &CountdownHandler{
		countdownUC: countdownUC,
		logger:      logger,
	}
}

// GetCountdown godoc
// @Summary Checkpoint countdown
// @Description Returns the countdown toward the next checkpoint, or its terminal string
// @Tags Countdown
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/countdown [get]
func (h *CountdownHandler) GetCountdown(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.countdownUC.GetCountdown(c.Context()), nil)
}
