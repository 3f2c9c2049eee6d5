package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ticketdesk/internal/model"
)

func ids(tickets []model.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, ticket := range tickets {
		out = append(out, ticket.ID)
	}
	return out
}

// testTicketRepository exercises the behaviour every backend must share.
func testTicketRepository(t *testing.T, newRepository func(t *testing.T) TicketRepository) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := newRepository(t)

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tickets)
		assert.Empty(t, tickets)
	})

	t.Run("create assigns id and list returns it", func(t *testing.T) {
		repo := newRepository(t)

		ticket := &model.Ticket{Name: "Ada", Problem: "printer jam"}
		require.NoError(t, repo.Create(ctx, ticket))
		assert.NotEmpty(t, ticket.ID)

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Ticket{*ticket}, tickets)
	})

	t.Run("fields round trip byte for byte", func(t *testing.T) {
		repo := newRepository(t)

		inputs := []model.Ticket{
			{Name: "", Problem: ""},
			{Name: "  padded  ", Problem: "line one\nline two\t"},
			{Name: "Łukasz 日本", Problem: `quotes " and \ backslash`},
		}
		for i := range inputs {
			require.NoError(t, repo.Create(ctx, &inputs[i]))
		}

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, inputs, tickets)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		repo := newRepository(t)

		var created []string
		for _, name := range []string{"first", "second", "third", "fourth"} {
			ticket := &model.Ticket{Name: name, Problem: "p"}
			require.NoError(t, repo.Create(ctx, ticket))
			created = append(created, ticket.ID)
		}

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, created, ids(tickets))
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		repo := newRepository(t)

		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			ticket := &model.Ticket{Name: "same", Problem: "same"}
			require.NoError(t, repo.Create(ctx, ticket))
			assert.False(t, seen[ticket.ID], "duplicate id %s", ticket.ID)
			seen[ticket.ID] = true
		}
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		repo := newRepository(t)

		keep := &model.Ticket{Name: "keep", Problem: "p"}
		drop := &model.Ticket{Name: "drop", Problem: "p"}
		require.NoError(t, repo.Create(ctx, keep))
		require.NoError(t, repo.Create(ctx, drop))

		require.NoError(t, repo.DeleteByID(ctx, drop.ID))

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Ticket{*keep}, tickets)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepository(t)

		ticket := &model.Ticket{Name: "Ada", Problem: "printer jam"}
		require.NoError(t, repo.Create(ctx, ticket))

		assert.NoError(t, repo.DeleteByID(ctx, ticket.ID))
		assert.NoError(t, repo.DeleteByID(ctx, ticket.ID))

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})

	t.Run("delete unknown id succeeds", func(t *testing.T) {
		repo := newRepository(t)

		ticket := &model.Ticket{Name: "Ada", Problem: "printer jam"}
		require.NoError(t, repo.Create(ctx, ticket))

		assert.NoError(t, repo.DeleteByID(ctx, "000000000000000000000000"))
		assert.NoError(t, repo.DeleteByID(ctx, "never-issued"))

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})

	t.Run("delete of an id shaped like a store key keeps the list", func(t *testing.T) {
		repo := newRepository(t)

		ada := &model.Ticket{Name: "Ada", Problem: "printer jam"}
		bob := &model.Ticket{Name: "Bob", Problem: "no network"}
		require.NoError(t, repo.Create(ctx, ada))
		require.NoError(t, repo.Create(ctx, bob))

		for _, id := range []string{"index", "item", "item:" + ada.ID, "", "*"} {
			assert.NoError(t, repo.DeleteByID(ctx, id))
		}

		tickets, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Ticket{*ada, *bob}, tickets)
	})
}
