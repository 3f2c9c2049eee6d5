package repository

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"ticketdesk/definition"
	"ticketdesk/internal/model"
)

// RedisTicketRepository keeps each ticket in a hash under {ticket}:item:<id>
// and the insertion order in the {ticket}:index list. All keys share one hash
// tag so the transactions stay in a single cluster slot.
type RedisTicketRepository struct {
	client redis.UniversalClient
	prefix string
}

func (t *RedisTicketRepository) indexKey() string {
	return t.prefix + ":index"
}

func (t *RedisTicketRepository) ticketKey(id string) string {
	return fmt.Sprintf("%s:item:%s", t.prefix, id)
}

func (t *RedisTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	id := uuid.NewString()
	_, errExec := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, t.ticketKey(id), "name", ticket.Name, "problem", ticket.Problem)
		pipe.RPush(ctx, t.indexKey(), id)
		return nil
	})
	if errExec != nil {
		return errExec
	}

	ticket.SetID(id)
	return nil
}

func (t *RedisTicketRepository) FindAll(ctx context.Context) ([]model.Ticket, error) {
	ids, errRange := t.client.LRange(ctx, t.indexKey(), 0, -1).Result()
	if errRange != nil {
		return nil, errRange
	}

	tickets := []model.Ticket{}
	if len(ids) == 0 {
		return tickets, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, errExec := t.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, t.ticketKey(id))
		}
		return nil
	})
	if errExec != nil {
		return nil, errExec
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// removed between LRANGE and HGETALL
			continue
		}
		tickets = append(tickets, model.Ticket{ID: ids[i], Name: fields["name"], Problem: fields["problem"]})
	}

	return tickets, nil
}

func (t *RedisTicketRepository) DeleteByID(ctx context.Context, id string) error {
	_, errExec := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, t.ticketKey(id))
		pipe.LRem(ctx, t.indexKey(), 0, id)
		return nil
	})
	return errExec
}

func NewRedisTicketRepository(client redis.UniversalClient) *RedisTicketRepository {
	return &RedisTicketRepository{client: client, prefix: definition.TicketKeyPrefix}
}
