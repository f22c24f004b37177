// Package domain contains application usecases orchestrating the assignment core.
package domain

import (
	"context"
	"time"

	"github.com/lodi2001/mdc-v2-sub001/internal/store"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	store    store.Store
	timeout  time.Duration
	pageSize int
	maxPages int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	st store.Store,
	timeout time.Duration,
	pageSize int,
	maxPages int,
) *Usecase {
	if pageSize <= 0 {
		pageSize = 100
	}
	if maxPages <= 0 {
		maxPages = 50
	}
	return &Usecase{
		ctx:      ctx,
		log:      log,
		store:    st,
		timeout:  timeout,
		pageSize: pageSize,
		maxPages: maxPages,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
