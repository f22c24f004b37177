// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/lodi2001/mdc-v2-sub001/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the assignment core to UI and reporting collaborators.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register mounts the collaborator-facing routes.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api/v1")
	api.Get("/assignees", h.GetAssignees)
	api.Post("/transactions/reassign", h.PostReassign)
	api.Post("/transactions/bulk-reassign", h.PostBulkReassign)
	api.Get("/assignments", h.GetAssignments)
	api.Get("/assignments/stats", h.GetAssignmentStats)
	api.Get("/assignments/workload", h.GetWorkloadDistribution)
}
