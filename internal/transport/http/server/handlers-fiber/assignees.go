package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetAssignees returns the eligible reassignment candidates. An empty list
// means eligibility could not be determined; callers must disable the
// reassignment action rather than offering an unchecked pool.
func (h *Handler) GetAssignees(c *fiber.Ctx) error {
	assignees := h.uc.GetAvailableAssignees(c.Context())

	resp := struct {
		Assignees []AssigneeDTO `json:"assignees"`
		Count     int           `json:"count"`
	}{
		Assignees: toAssigneeDTOList(assignees),
		Count:     len(assignees),
	}

	return c.Status(http.StatusOK).JSON(resp)
}
