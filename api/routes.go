package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"net/http"
	"ticketdesk/api/controller"
	"ticketdesk/internal/service"
	"ticketdesk/web"
)

func SetterEndpoints(app *fiber.App, ticketService *service.TicketService) {
	cudController := controller.NewTicketCUDController(ticketService)

	ticketGroup := app.Group("/api/tickets")
	ticketGroup.Post("/", cudController.CreateTicket)
	ticketGroup.Delete("/:id", cudController.DeleteTicket)
}

func GetterEndpoints(app *fiber.App, ticketService *service.TicketService) {
	fetchController := controller.NewTicketFetchController(ticketService)

	ticketGroup := app.Group("/api/tickets")
	ticketGroup.Get("/", fetchController.GetTickets)
}

// StaticEndpoints serves the browser client from staticDir, or from the
// bundled copy when staticDir is empty. Register it after the API groups.
func StaticEndpoints(app *fiber.App, staticDir string) {
	if staticDir != "" {
		app.Static("/", staticDir)
		return
	}

	app.Use("/", filesystem.New(filesystem.Config{
		Root: http.FS(web.Assets),
	}))
}
