package api

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"ticketdesk/internal/config"
	"ticketdesk/internal/logger"
	"ticketdesk/internal/service"
)

func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		Immutable:             true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())

	return app
}

// errorHandler keeps server errors body-less, matching the handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code >= fiber.StatusInternalServerError {
		return logger.Error(c, code, err, "T500", "ErrorHandler")
	}
	return c.SendStatus(code)
}

// Register wires the endpoints selected by the configured op mode.
func Register(app *fiber.App, cfg *config.Config, ticketService *service.TicketService) {
	if cfg.OpMode != config.OpModeGetter {
		SetterEndpoints(app, ticketService)
	}
	if cfg.OpMode != config.OpModeSetter {
		GetterEndpoints(app, ticketService)
	}
	StaticEndpoints(app, cfg.StaticDir)
}
