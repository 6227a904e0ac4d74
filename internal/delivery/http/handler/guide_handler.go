package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase"
)

// GuideHandler serves the reference panels: weather, solar bar, phrasebook
// and utility links.
type GuideHandler struct {
	guideUC *usecase.GuideUseCase
	logger  *zap.Logger
}

func NewGuideHandler(guideUC *usecase.GuideUseCase, logger *zap.Logger) *GuideHandler {
	return &GuideHandler{
		guideUC: guideUC,
		logger:  logger,
	}
}

// GetWeather godoc
// @Summary Weather panel
// @Description Today's daytime hourly window plus the multi-day outlook
// @Tags Guide
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/guide/weather [get]
func (h *GuideHandler) GetWeather(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.guideUC.GetWeather(c.Context()), nil)
}

// GetSolar godoc
// @Summary Solar panel
// @Description Sunrise, sunset and daylight on a 24h bar with a live now marker
// @Tags Guide
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/guide/solar [get]
func (h *GuideHandler) GetSolar(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.guideUC.GetSolar(c.Context()), nil)
}

// GetPhrasebook godoc
// @Summary Phrasebook
// @Tags Guide
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/guide/phrasebook [get]
func (h *GuideHandler) GetPhrasebook(c *fiber.Ctx) error {
	resp := h.guideUC.GetPhrasebook(c.Context())
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Entries)})
}

// GetLinks godoc
// @Summary Utility links
// @Description Translator and cruise-line links, plus the SOS link when a position is known
// @Tags Guide
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/guide/links [get]
func (h *GuideHandler) GetLinks(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.guideUC.GetLinks(c.Context()), nil)
}

// GetSOS godoc
// @Summary Emergency link
// @Description WhatsApp link with live coordinates; fails without a known position
// @Tags Guide
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/guide/sos [get]
func (h *GuideHandler) GetSOS(c *fiber.Ctx) error {
	resp, err := h.guideUC.GetSOS(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
