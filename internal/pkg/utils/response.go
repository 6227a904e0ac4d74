package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/pkg/errors"
)

// SuccessResponse is the {data, meta} envelope every 2xx body uses.
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse carries a single AppError.
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta is optional envelope metadata.
type Meta struct {
	Total int `json:"total,omitempty"`
}

// SendSuccess writes the success envelope.
func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{Data: data, Meta: meta})
}

// SendError writes an AppError with its mapped status. Anything that is not an
// AppError, wrapped or not, becomes an opaque 500.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
