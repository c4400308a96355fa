package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-dashboard/config"
	"weather-dashboard/internal/services/history"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	service *history.HistoryService
	cnf     *config.Config
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	service *history.HistoryService,
	cnf *config.Config,
	l *logger.Logger,
) {
	r := &routes{
		service: service,
		cnf:     cnf,
		l:       l,
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")
	api.Get("/history", r.handleHistory)
	api.Get("/state", r.handleState)

	// Dashboard page and assets.
	app.Static("/", "./static")
}
