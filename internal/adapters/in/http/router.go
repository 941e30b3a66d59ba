package http

import (
	"time"

	"atelier/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 30 * time.Second
)

// NewEcho builds an echo instance with request ids, zap request logging,
// panic recovery, the request validator and the JSON error handler.
func NewEcho(zapLogger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout

	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(zapLogger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.Recover())
	return e
}
