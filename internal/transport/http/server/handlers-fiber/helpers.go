package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the transport error shape. Field-keyed validation reasons
// from the store pass through untouched so callers can show the exact reason.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func writeError(c *fiber.Ctx, err error) error {
	var vErr *entities.ValidationError

	switch {
	case errors.As(err, &vErr):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "validation rejected",
			Errors:  vErr.Fields,
		})
	case errors.Is(err, entities.ErrInvalidArgument):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: err.Error()})
	case errors.Is(err, entities.ErrNotFound),
		errors.Is(err, entities.ErrTransactionNotFound),
		errors.Is(err, entities.ErrAssigneeNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Message: "resource not found"})
	case errors.Is(err, entities.ErrStoreUnavailable):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Message: "transaction store unavailable"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Message: "internal error"})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Message: msg})
}
