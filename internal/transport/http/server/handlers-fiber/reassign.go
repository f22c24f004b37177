package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ReassignRequest is the transport shape of a single reassignment.
// assigned_to null clears the assignee.
type ReassignRequest struct {
	TransactionID string `json:"transaction_id"`
	AssignedTo    *int64 `json:"assigned_to"`
	Reason        string `json:"reason"`
}

// BulkReassignRequest is the transport shape of a bulk reassignment.
type BulkReassignRequest struct {
	TransactionIDs []string `json:"transaction_ids"`
	AssignedTo     *int64   `json:"assigned_to"`
	Reason         string   `json:"reason"`
}

// PostReassign changes or clears one transaction's assignee.
func (h *Handler) PostReassign(c *fiber.Ctx) error {
	var body ReassignRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse reassign body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	if err := h.uc.Reassign(c.Context(), body.TransactionID, body.AssignedTo, body.Reason); err != nil {
		h.log.Errorw("failed to reassign", "error", err.Error(), "transaction_id", body.TransactionID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Success bool `json:"success"`
	}{Success: true})
}

// PostBulkReassign applies one reassignment to many transactions. The
// response always carries both requested and updated counts so a partial
// batch is reported as "N of M reassigned", never as a silent success.
func (h *Handler) PostBulkReassign(c *fiber.Ctx) error {
	var body BulkReassignRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse bulk reassign body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	res, err := h.uc.BulkReassign(c.Context(), body.TransactionIDs, body.AssignedTo, body.Reason)
	if err != nil {
		h.log.Errorw("failed to bulk reassign", "error", err.Error(), "requested", len(body.TransactionIDs))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Success   bool `json:"success"`
		Requested int  `json:"requested"`
		Updated   int  `json:"updated"`
	}{Success: true, Requested: res.Requested, Updated: res.Updated})
}
