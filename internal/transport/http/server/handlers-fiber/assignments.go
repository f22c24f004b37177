package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetAssignments returns one page of normalized assignment records.
func (h *Handler) GetAssignments(c *fiber.Ctx) error {
	filter := parseFilter(c)
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 0)

	res, err := h.uc.ListAssignments(c.Context(), filter, page, pageSize)
	if err != nil {
		h.log.Errorw("failed to list assignments", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Records  []AssignmentDTO `json:"records"`
		Total    int             `json:"total"`
		Page     int             `json:"page"`
		PageSize int             `json:"page_size"`
	}{
		Records:  toAssignmentDTOList(res.Records),
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetAssignmentStats recomputes derived statistics over a fresh snapshot of
// the filtered record set.
func (h *Handler) GetAssignmentStats(c *fiber.Ctx) error {
	filter := parseFilter(c)

	records, err := h.uc.SnapshotAssignments(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to snapshot assignments for stats", "error", err.Error())
		return writeError(c, err)
	}

	asOf := time.Now()
	stats := h.uc.ComputeStats(records, asOf)

	resp := struct {
		Stats entities.AssignmentStats `json:"stats"`
		AsOf  string                   `json:"as_of"`
	}{Stats: stats, AsOf: asOf.Format(time.RFC3339)}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetWorkloadDistribution recomputes per-assignee load over a fresh snapshot
// scoped to the current eligible-assignee pool. Unlike the assignees endpoint
// this is a report, so a failed pool resolution is an error, not an empty
// result.
func (h *Handler) GetWorkloadDistribution(c *fiber.Ctx) error {
	filter := parseFilter(c)

	assignees, err := h.uc.EligibleAssignees(c.Context())
	if err != nil {
		h.log.Errorw("failed to resolve assignee pool for workload", "error", err.Error())
		return writeError(c, err)
	}
	records, err := h.uc.SnapshotAssignments(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to snapshot assignments for workload", "error", err.Error())
		return writeError(c, err)
	}

	asOf := time.Now()
	workload := h.uc.ComputeDistribution(records, assignees, asOf)

	resp := struct {
		Workload []entities.WorkloadDistribution `json:"workload"`
		AsOf     string                          `json:"as_of"`
	}{Workload: workload, AsOf: asOf.Format(time.RFC3339)}

	return c.Status(http.StatusOK).JSON(resp)
}

func parseFilter(c *fiber.Ctx) entities.AssignmentFilter {
	filter := entities.AssignmentFilter{
		Search: c.Query("search"),
	}
	if s := c.Query("status"); s != "" {
		status := entities.Status(s)
		filter.Status = &status
	}
	if p := c.Query("priority"); p != "" {
		priority := entities.Priority(p)
		filter.Priority = &priority
	}
	if a := c.QueryInt("assigned_to", 0); a > 0 {
		id := int64(a)
		filter.AssigneeID = &id
	}
	return filter
}
