package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/validator"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase/dto"
)

// NarrationHandler serves audio guide track sets and the playback slot.
type NarrationHandler struct {
	narrationUC *usecase.NarrationUseCase
	logger      *zap.Logger
}

func NewNarrationHandler(narrationUC *usecase.NarrationUseCase, logger *zap.Logger) *NarrationHandler {
	return &NarrationHandler{
		narrationUC: narrationUC,
		logger:      logger,
	}
}

// GetAudioGuide godoc
// @Summary Audio guide of an activity
// @Tags Narration
// @Produce json
// @Param id path string true "Activity id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/activities/{id}/audio [get]
func (h *NarrationHandler) GetAudioGuide(c *fiber.Ctx) error {
	resp, err := h.narrationUC.GetAudioGuide(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Tracks)})
}

// Play godoc
// @Summary Start narration
// @Description Plays one track, superseding any in-flight narration
// @Tags Narration
// @Accept json
// @Produce json
// @Param request body dto.PlayRequest true "Track selection"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/narration/play [post]
func (h *NarrationHandler) Play(c *fiber.Ctx) error {
	var req dto.PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	resp, err := h.narrationUC.Play(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Stop godoc
// @Summary Stop narration
// @Tags Narration
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/narration/stop [post]
func (h *NarrationHandler) Stop(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.narrationUC.Stop(c.Context()), nil)
}

// GetStatus godoc
// @Summary Playback status
// @Tags Narration
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/narration/status [get]
func (h *NarrationHandler) GetStatus(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.narrationUC.GetStatus(c.Context()), nil)
}
