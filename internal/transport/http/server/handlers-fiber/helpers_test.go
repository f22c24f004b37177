package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorValidationRejection(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, &entities.ValidationError{Fields: map[string][]string{
			"assigned_to": {"only admin or editor users can be assigned"},
		}})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Success)
	require.Equal(t, []string{"only admin or editor users can be assigned"}, body.Errors["assigned_to"])
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "invalid_argument",
			err:     entities.ErrInvalidArgument,
			status:  http.StatusBadRequest,
			message: "invalid argument",
		},
		{
			name:    "not_found",
			err:     entities.ErrNotFound,
			status:  http.StatusNotFound,
			message: "resource not found",
		},
		{
			name:    "transaction_not_found",
			err:     entities.ErrTransactionNotFound,
			status:  http.StatusNotFound,
			message: "resource not found",
		},
		{
			name:    "assignee_not_found",
			err:     entities.ErrAssigneeNotFound,
			status:  http.StatusNotFound,
			message: "resource not found",
		},
		{
			name:    "store_unavailable",
			err:     entities.ErrStoreUnavailable,
			status:  http.StatusBadGateway,
			message: "transaction store unavailable",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.message, body.Message)
		})
	}
}
