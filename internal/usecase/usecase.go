package usecase

import (
	"context"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/store"
	"github.com/lodi2001/mdc-v2-sub001/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AssigneeUsecaseInterface
	ReassignmentUsecaseInterface
	AssignmentQueryUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, st store.Store, timeout time.Duration, pageSize, maxPages int) InterfaceUsecase {
	return domain.New(log, ctx, st, timeout, pageSize, maxPages)
}
