package main

import (
	"context"
	"ticketdesk/api"
	"ticketdesk/internal/config"
	"ticketdesk/internal/logger"
	"ticketdesk/internal/repository"
	"ticketdesk/internal/service"
	"time"
)

const connectTimeout = 10 * time.Second

// StartAPI connects to the configured store and serves until the listener
// fails. A store that cannot be reached at startup is fatal.
func StartAPI() {
	cfg, errConfig := config.Load()
	if errConfig != nil {
		logger.Fatal("config-error", errConfig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	ticketRepository, closeStore, errOpen := repository.Open(ctx, cfg)
	cancel()
	if errOpen != nil {
		logger.Fatal("store-error", errOpen, "driver", cfg.StoreDriver)
	}
	defer closeStore()

	app := api.NewApp(cfg)
	api.Register(app, cfg, service.NewTicketService(ticketRepository))

	logger.Info("server-start", "addr", cfg.Addr(), "driver", cfg.StoreDriver, "opMode", cfg.OpMode)
	if errListen := app.Listen(cfg.Addr()); errListen != nil {
		closeStore()
		logger.Fatal("listen-error", errListen, "addr", cfg.Addr())
	}
}

func main() {
	StartAPI()
}
