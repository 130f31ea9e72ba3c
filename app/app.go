package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	efs "cinecatalog"
	"cinecatalog/config"
	"cinecatalog/httpx"

	"github.com/labstack/echo/v5"
)

// New builds the echo instance with middleware and routes registered.
func New() *echo.Echo {
	e := echo.NewWithConfig(echo.Config{
		Filesystem: efs.StaticFS,
		Validator:  httpx.NewValidator(),
		Logger:     slog.Default(),
		Binder:     &echo.DefaultBinder{},
	})

	e.Static("/static", "static")

	RegisterMiddleware(e)
	RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo) error {
	sigCtx, sigCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer sigCancel()

	port := strconv.Itoa(config.Config.Port)
	slog.Info("http://localhost:" + port)

	errCh := make(chan error, 1)

	// start server
	go func() {
		sc := echo.StartConfig{
			Address:         "0.0.0.0:" + port,
			GracefulTimeout: 10 * time.Second,
		}
		if err := sc.Start(sigCtx, e); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	// wait for shutdown signal or server failure
	select {
	case <-sigCtx.Done():
		slog.Info("shutdown signal received")
		return <-errCh
	case err := <-errCh:
		return err
	}
}
