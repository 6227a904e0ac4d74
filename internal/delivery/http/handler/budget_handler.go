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

// BudgetHandler serves the ledger, the paid toggle, custom expenses and the
// standalone converter.
type BudgetHandler struct {
	budgetUC *usecase.BudgetUseCase
	logger   *zap.Logger
}

func NewBudgetHandler(budgetUC *usecase.BudgetUseCase, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetUC: budgetUC,
		logger:   logger,
	}
}

// GetSummary godoc
// @Summary Budget summary
// @Description Returns the ledger in the display currency, re-priced at the live rate
// @Tags Budget
// @Produce json
// @Param currency query string false "Display currency (EUR or NOK)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/budget/summary [get]
func (h *BudgetHandler) GetSummary(c *fiber.Ctx) error {
	resp, err := h.budgetUC.GetSummary(c.Context(), c.Query("currency"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Items)})
}

// TogglePaid godoc
// @Summary Toggle paid
// @Description Flips paid-set membership for a priced activity
// @Tags Budget
// @Produce json
// @Param id path string true "Activity id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/budget/paid/{id} [post]
func (h *BudgetHandler) TogglePaid(c *fiber.Ctx) error {
	resp, err := h.budgetUC.TogglePaid(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// AddExpense godoc
// @Summary Add a custom expense
// @Description Records a session-only expense, frozen at the current rate
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.AddExpenseRequest true "Expense"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/budget/expenses [post]
func (h *BudgetHandler) AddExpense(c *fiber.Ctx) error {
	var req dto.AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse expense body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrExpenseInvalid.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	resp, err := h.budgetUC.AddExpense(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// RemoveExpense godoc
// @Summary Remove a custom expense
// @Description Deletes an expense; an absent id is a no-op
// @Tags Budget
// @Produce json
// @Param id path string true "Expense id"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/budget/expenses/{id} [delete]
func (h *BudgetHandler) RemoveExpense(c *fiber.Ctx) error {
	h.budgetUC.RemoveExpense(c.Context(), c.Params("id"))
	return utils.SendSuccess(c, fiber.Map{"removed": c.Params("id")}, nil)
}

// Convert godoc
// @Summary Currency converter
// @Description Converts an amount between EUR and NOK at the current rate
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Conversion"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/budget/convert [post]
func (h *BudgetHandler) Convert(c *fiber.Ctx) error {
	var req dto.ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrAmountInvalid.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	resp, err := h.budgetUC.Convert(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
