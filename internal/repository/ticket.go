package repository

import (
	"context"
	"ticketdesk/internal/model"
)

// TicketRepository is the storage capability handed to the ticket service.
// FindAll returns tickets in insertion order. DeleteByID succeeds whether or
// not a ticket matched.
type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	FindAll(ctx context.Context) ([]model.Ticket, error)
	DeleteByID(ctx context.Context, id string) error
}
