// Package store provides a factory for upstream store clients.
package store

import (
	"context"
	"fmt"

	"github.com/lodi2001/mdc-v2-sub001/config"
	"github.com/lodi2001/mdc-v2-sub001/internal/store/rest"

	"go.uber.org/zap"
)

// New constructs a store client backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Store, error) {
	switch name {
	case "rest":
		return rest.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", name)
	}
}
