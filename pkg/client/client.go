package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"net/url"
	"strings"
	"ticketdesk/definition"
	"ticketdesk/internal/model"
	"ticketdesk/request"
	"time"
)

type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// TicketClient calls the ticket endpoints of a running server.
type TicketClient struct {
	baseURL string
	timeout time.Duration
}

func (tc *TicketClient) endpoint(path string) string {
	return tc.baseURL + path
}

// timeoutFor bounds the request by the client timeout and the context
// deadline, whichever is sooner.
func (tc *TicketClient) timeoutFor(ctx context.Context) time.Duration {
	timeout := tc.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func (tc *TicketClient) send(ctx context.Context, newAgent func() *fiber.Agent, method string, path string) ([]byte, error) {
	if errCtx := ctx.Err(); errCtx != nil {
		return nil, errCtx
	}

	agent := newAgent()
	agent.Timeout(tc.timeoutFor(ctx))
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, &StatusError{Method: method, Path: path, Code: code}
	}

	return body, nil
}

func (tc *TicketClient) List(ctx context.Context) ([]model.Ticket, error) {
	path := "/api/tickets"
	body, errSend := tc.send(ctx, func() *fiber.Agent {
		return fiber.Get(tc.endpoint(path))
	}, fiber.MethodGet, path)
	if errSend != nil {
		return nil, errSend
	}

	var tickets []model.Ticket
	if errDecode := json.Unmarshal(body, &tickets); errDecode != nil {
		return nil, fmt.Errorf("decode tickets: %w", errDecode)
	}

	return tickets, nil
}

func (tc *TicketClient) Create(ctx context.Context, name string, problem string) (*model.Ticket, error) {
	path := "/api/tickets"
	body, errSend := tc.send(ctx, func() *fiber.Agent {
		return fiber.Post(tc.endpoint(path)).JSON(request.CreateTicketRequest{Name: name, Problem: problem})
	}, fiber.MethodPost, path)
	if errSend != nil {
		return nil, errSend
	}

	ticket := model.NewTicket()
	if errDecode := json.Unmarshal(body, ticket); errDecode != nil {
		return nil, fmt.Errorf("decode ticket: %w", errDecode)
	}

	return ticket, nil
}

func (tc *TicketClient) Delete(ctx context.Context, ticketID string) error {
	path := "/api/tickets/" + url.PathEscape(ticketID)
	_, errSend := tc.send(ctx, func() *fiber.Agent {
		agent := fiber.Delete(tc.endpoint(path))
		// keep escaped separators such as %2F inside the id segment
		agent.Request().URI().DisablePathNormalizing = true
		return agent
	}, fiber.MethodDelete, path)
	return errSend
}

func NewTicketClient(baseURL string) *TicketClient {
	return &TicketClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: definition.ClientTimeout,
	}
}

func (tc *TicketClient) SetTimeout(timeout time.Duration) {
	tc.timeout = timeout
}
