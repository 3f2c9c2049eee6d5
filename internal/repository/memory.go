package repository

import (
	"context"
	"github.com/google/uuid"
	"sync"
	"ticketdesk/internal/model"
)

type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []model.Ticket
}

func (m *MemoryTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	if errCtx := ctx.Err(); errCtx != nil {
		return errCtx
	}

	ticket.SetID(uuid.NewString())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets = append(m.tickets, *ticket)
	return nil
}

func (m *MemoryTicketRepository) FindAll(ctx context.Context) ([]model.Ticket, error) {
	if errCtx := ctx.Err(); errCtx != nil {
		return nil, errCtx
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	tickets := make([]model.Ticket, len(m.tickets))
	copy(tickets, m.tickets)
	return tickets, nil
}

func (m *MemoryTicketRepository) DeleteByID(ctx context.Context, id string) error {
	if errCtx := ctx.Err(); errCtx != nil {
		return errCtx
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tickets {
		if m.tickets[i].ID == id {
			m.tickets = append(m.tickets[:i], m.tickets[i+1:]...)
			return nil
		}
	}
	return nil
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{}
}
