// Package main wires the HTTP server for the transaction assignment core.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lodi2001/mdc-v2-sub001/config"
	"github.com/lodi2001/mdc-v2-sub001/internal/store"
	"github.com/lodi2001/mdc-v2-sub001/internal/transport/http/middleware"
	handlers_fiber "github.com/lodi2001/mdc-v2-sub001/internal/transport/http/server/handlers-fiber"
	"github.com/lodi2001/mdc-v2-sub001/internal/usecase"
	"github.com/lodi2001/mdc-v2-sub001/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	st, err := store.New(ctx, "rest", log, cfg)
	if err != nil {
		log.Errorw("store initialization error", "error", err)
		return
	}
	if err := st.OnStart(ctx); err != nil {
		log.Errorw("store start error", "error", err)
		return
	}
	defer func() {
		_ = st.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, st, timeout, cfg.Store.PageSize, cfg.Store.MaxPages)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
