package service

import (
	"context"
	"ticketdesk/internal/model"
	"ticketdesk/internal/repository"
)

type TicketService struct {
	ticketRepository repository.TicketRepository
}

func (s *TicketService) List(ctx context.Context) ([]model.Ticket, error) {
	tickets, errFind := s.ticketRepository.FindAll(ctx)
	if errFind != nil {
		return nil, errFind
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}

	return tickets, nil
}

// Create stores name and problem exactly as given; empty values are kept.
func (s *TicketService) Create(ctx context.Context, name string, problem string) (*model.Ticket, error) {
	ticket := model.NewTicket()
	ticket.SetName(name)
	ticket.SetProblem(problem)

	errCreate := s.ticketRepository.Create(ctx, ticket)
	if errCreate != nil {
		return nil, errCreate
	}

	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, ticketID string) error {
	return s.ticketRepository.DeleteByID(ctx, ticketID)
}

func NewTicketService(ticketRepository repository.TicketRepository) *TicketService {
	return &TicketService{ticketRepository: ticketRepository}
}
