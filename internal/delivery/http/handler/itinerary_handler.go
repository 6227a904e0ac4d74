package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/usecase"
)

// ItineraryHandler serves the itinerary, the classified timeline and the
// completion toggle.
type ItineraryHandler struct {
	timelineUC *usecase.TimelineUseCase
	logger     *zap.Logger
}

func NewItineraryHandler(timelineUC *usecase.TimelineUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		timelineUC: timelineUC,
		logger:     logger,
	}
}

// GetItinerary godoc
// @Summary Full itinerary
// @Description Returns every scheduled entry with its completion flag
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/itinerary [get]
func (h *ItineraryHandler) GetItinerary(c *fiber.Ctx) error {
	resp := h.timelineUC.GetItinerary(c.Context())
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Activities)})
}

// GetTimeline godoc
// @Summary Classified timeline
// @Description Returns the itinerary with time-derived status, progress and gaps
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/timeline [get]
func (h *ItineraryHandler) GetTimeline(c *fiber.Ctx) error {
	resp := h.timelineUC.GetTimeline(c.Context())
	return utils.SendSuccess(c, resp, nil)
}

// ToggleCompleted godoc
// @Summary Toggle completion
// @Description Flips the manual completion flag of an activity
// @Tags Itinerary
// @Produce json
// @Param id path string true "Activity id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/{id}/toggle [post]
func (h *ItineraryHandler) ToggleCompleted(c *fiber.Ctx) error {
	resp, err := h.timelineUC.ToggleCompleted(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
