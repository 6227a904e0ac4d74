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

type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetPOIs godoc
// @Summary Map markers
// @Description Returns activity markers, extra POIs and start-to-end legs
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/map/pois [get]
func (h *MapHandler) GetPOIs(c *fiber.Ctx) error {
	resp := h.mapUC.GetPOIs(c.Context())
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Markers)})
}

// GetPosition godoc
// @Summary Current device position
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/map/position [get]
func (h *MapHandler) GetPosition(c *fiber.Ctx) error {
	resp, err := h.mapUC.GetPosition(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// ReportPosition godoc
// @Summary Report a device position fix
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.PositionRequest true "Position fix"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/map/position [post]
func (h *MapHandler) ReportPosition(c *fiber.Ctx) error {
	var req dto.PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	resp, err := h.mapUC.ReportPosition(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
