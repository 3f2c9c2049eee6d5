package controller

import (
	"github.com/gofiber/fiber/v2"
	"net/url"
	"ticketdesk/internal/logger"
	"ticketdesk/internal/service"
	"ticketdesk/request"
)

type TicketCUDController struct {
	ticketService *service.TicketService
}

// CreateTicket replies with the stored ticket. A request without a body
// creates a ticket with both fields empty; a body that cannot be parsed is
// treated like any other failure.
func (cud *TicketCUDController) CreateTicket(c *fiber.Ctx) error {
	var reqBody request.CreateTicketRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&reqBody); err != nil {
			return logger.Error(c, fiber.StatusInternalServerError, err, "T100", "CreateTicket.BodyParser")
		}
	}

	ticket, errCreate := cud.ticketService.Create(c.UserContext(), reqBody.Name, reqBody.Problem)
	if errCreate != nil {
		return logger.Error(c, fiber.StatusInternalServerError, errCreate, "T500", "CreateTicket.Create")
	}

	return c.JSON(ticket)
}

// DeleteTicket reports success whether or not a ticket matched.
func (cud *TicketCUDController) DeleteTicket(c *fiber.Ctx) error {
	ticketID, errUnescape := url.PathUnescape(c.Params("id"))
	if errUnescape != nil {
		return logger.Error(c, fiber.StatusInternalServerError, errUnescape, "T100", "DeleteTicket.PathUnescape")
	}

	errDelete := cud.ticketService.Delete(c.UserContext(), ticketID)
	if errDelete != nil {
		return logger.Error(c, fiber.StatusInternalServerError, errDelete, "T500", "DeleteTicket.Delete")
	}

	c.Status(fiber.StatusOK)
	return nil
}

func NewTicketCUDController(ticketService *service.TicketService) *TicketCUDController {
	return &TicketCUDController{ticketService: ticketService}
}

type TicketFetchController struct {
	ticketService *service.TicketService
}

func (fh *TicketFetchController) GetTickets(c *fiber.Ctx) error {
	tickets, errFetch := fh.ticketService.List(c.UserContext())
	if errFetch != nil {
		return logger.Error(c, fiber.StatusInternalServerError, errFetch, "T500", "GetTickets.Fetch")
	}

	return c.JSON(tickets)
}

func NewTicketFetchController(ticketService *service.TicketService) *TicketFetchController {
	return &TicketFetchController{ticketService: ticketService}
}
