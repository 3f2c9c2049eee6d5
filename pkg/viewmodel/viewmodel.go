package viewmodel

import (
	"context"
	"log/slog"
	"sync"
	"ticketdesk/internal/model"
)

// TicketAPI is the remote surface the view-model drives.
type TicketAPI interface {
	List(ctx context.Context) ([]model.Ticket, error)
	Create(ctx context.Context, name string, problem string) (*model.Ticket, error)
	Delete(ctx context.Context, ticketID string) error
}

// ViewModel holds the displayed tickets and the two form fields. The ticket
// list only ever changes by wholesale replacement after a List call; failures
// are logged and never returned.
type ViewModel struct {
	api    TicketAPI
	logger *slog.Logger

	mu           sync.Mutex
	tickets      []model.Ticket
	addedName    string
	addedProblem string
}

func (vm *ViewModel) Tickets() []model.Ticket {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	tickets := make([]model.Ticket, len(vm.tickets))
	copy(tickets, vm.tickets)
	return tickets
}

func (vm *ViewModel) SetName(name string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.addedName = name
}

func (vm *ViewModel) SetProblem(problem string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.addedProblem = problem
}

func (vm *ViewModel) Fields() (name string, problem string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.addedName, vm.addedProblem
}

// Load replaces the displayed tickets with the server's list. It reports
// whether the replacement happened.
func (vm *ViewModel) Load(ctx context.Context) bool {
	tickets, errList := vm.api.List(ctx)
	if errList != nil {
		vm.logger.Error("load tickets", "error", errList)
		return false
	}

	vm.mu.Lock()
	vm.tickets = tickets
	vm.mu.Unlock()
	return true
}

// Submit creates a ticket from the current fields. On success the fields are
// cleared and the list re-fetched; on failure the fields keep their values.
func (vm *ViewModel) Submit(ctx context.Context) bool {
	name, problem := vm.Fields()

	_, errCreate := vm.api.Create(ctx, name, problem)
	if errCreate != nil {
		vm.logger.Error("submit ticket", "error", errCreate)
		return false
	}

	vm.mu.Lock()
	vm.addedName = ""
	vm.addedProblem = ""
	vm.mu.Unlock()

	vm.Load(ctx)
	return true
}

func (vm *ViewModel) Remove(ctx context.Context, ticket model.Ticket) bool {
	errDelete := vm.api.Delete(ctx, ticket.ID)
	if errDelete != nil {
		vm.logger.Error("remove ticket", "error", errDelete, "ticket", ticket.ID)
		return false
	}

	vm.Load(ctx)
	return true
}

func New(api TicketAPI, logger *slog.Logger) *ViewModel {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewModel{api: api, logger: logger, tickets: []model.Ticket{}}
}
