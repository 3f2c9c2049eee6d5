package viewmodel

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"ticketdesk/internal/model"
)

type mockTicketAPI struct {
	mock.Mock
}

func (m *mockTicketAPI) List(ctx context.Context) ([]model.Ticket, error) {
	args := m.Called(ctx)
	tickets, _ := args.Get(0).([]model.Ticket)
	return tickets, args.Error(1)
}

func (m *mockTicketAPI) Create(ctx context.Context, name string, problem string) (*model.Ticket, error) {
	args := m.Called(ctx, name, problem)
	ticket, _ := args.Get(0).(*model.Ticket)
	return ticket, args.Error(1)
}

func (m *mockTicketAPI) Delete(ctx context.Context, ticketID string) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func newViewModel(api TicketAPI) (*ViewModel, *bytes.Buffer) {
	var logs bytes.Buffer
	return New(api, slog.New(slog.NewTextHandler(&logs, nil))), &logs
}

var ada = model.Ticket{ID: "1", Name: "Ada", Problem: "printer jam"}

func TestLoad_ReplacesTickets(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("List", mock.Anything).Return([]model.Ticket{ada}, nil).Once()
	vm, _ := newViewModel(api)

	assert.Empty(t, vm.Tickets())
	assert.True(t, vm.Load(context.Background()))
	assert.Equal(t, []model.Ticket{ada}, vm.Tickets())
	api.AssertExpectations(t)
}

func TestLoad_FailureKeepsStaleTickets(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("List", mock.Anything).Return([]model.Ticket{ada}, nil).Once()
	api.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	vm, logs := newViewModel(api)

	require.True(t, vm.Load(context.Background()))
	assert.False(t, vm.Load(context.Background()))
	assert.Equal(t, []model.Ticket{ada}, vm.Tickets())
	assert.Contains(t, logs.String(), "connection refused")
	api.AssertExpectations(t)
}

func TestSubmit_ClearsFieldsAndRefetches(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("Create", mock.Anything, "Ada", "printer jam").Return(&ada, nil).Once()
	api.On("List", mock.Anything).Return([]model.Ticket{ada}, nil).Once()
	vm, _ := newViewModel(api)

	vm.SetName("Ada")
	vm.SetProblem("printer jam")
	assert.True(t, vm.Submit(context.Background()))

	name, problem := vm.Fields()
	assert.Empty(t, name)
	assert.Empty(t, problem)
	assert.Equal(t, []model.Ticket{ada}, vm.Tickets())
	api.AssertExpectations(t)
}

func TestSubmit_FailureKeepsFields(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("Create", mock.Anything, "Ada", "printer jam").Return(nil, errors.New("status 500")).Once()
	vm, logs := newViewModel(api)

	vm.SetName("Ada")
	vm.SetProblem("printer jam")
	assert.False(t, vm.Submit(context.Background()))

	name, problem := vm.Fields()
	assert.Equal(t, "Ada", name)
	assert.Equal(t, "printer jam", problem)
	assert.Contains(t, logs.String(), "submit ticket")
	api.AssertNotCalled(t, "List", mock.Anything)
	api.AssertExpectations(t)
}

func TestSubmit_SendsEmptyFields(t *testing.T) {
	created := model.Ticket{ID: "2"}
	api := new(mockTicketAPI)
	api.On("Create", mock.Anything, "", "").Return(&created, nil).Once()
	api.On("List", mock.Anything).Return([]model.Ticket{created}, nil).Once()
	vm, _ := newViewModel(api)

	assert.True(t, vm.Submit(context.Background()))
	assert.Equal(t, []model.Ticket{created}, vm.Tickets())
	api.AssertExpectations(t)
}

func TestRemove_Refetches(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("List", mock.Anything).Return([]model.Ticket{ada}, nil).Once()
	api.On("Delete", mock.Anything, "1").Return(nil).Once()
	api.On("List", mock.Anything).Return([]model.Ticket{}, nil).Once()
	vm, _ := newViewModel(api)

	require.True(t, vm.Load(context.Background()))
	assert.True(t, vm.Remove(context.Background(), ada))
	assert.Empty(t, vm.Tickets())
	api.AssertExpectations(t)
}

func TestRemove_FailureOnlyLogs(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("List", mock.Anything).Return([]model.Ticket{ada}, nil).Once()
	api.On("Delete", mock.Anything, "1").Return(errors.New("status 500")).Once()
	vm, logs := newViewModel(api)

	require.True(t, vm.Load(context.Background()))
	assert.False(t, vm.Remove(context.Background(), ada))
	assert.Equal(t, []model.Ticket{ada}, vm.Tickets())
	assert.Contains(t, logs.String(), "remove ticket")
	api.AssertExpectations(t)
}

func TestRefetchFailureAfterSubmitStillClearsFields(t *testing.T) {
	api := new(mockTicketAPI)
	api.On("Create", mock.Anything, "Ada", "printer jam").Return(&ada, nil).Once()
	api.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()
	vm, _ := newViewModel(api)

	vm.SetName("Ada")
	vm.SetProblem("printer jam")
	assert.True(t, vm.Submit(context.Background()))

	name, problem := vm.Fields()
	assert.Empty(t, name)
	assert.Empty(t, problem)
	assert.Empty(t, vm.Tickets())
	api.AssertExpectations(t)
}
