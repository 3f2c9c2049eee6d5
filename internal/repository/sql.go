package repository

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/google/uuid"
	"ticketdesk/definition"
	"ticketdesk/internal/model"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// TicketTableDDL returns the statement creating the ticket table. seq keeps
// insertion order since the identifier itself is random.
func TicketTableDDL(dialect Dialect) string {
	seqColumn := "seq INTEGER PRIMARY KEY AUTOINCREMENT"
	if dialect == Postgres {
		seqColumn = "seq BIGSERIAL PRIMARY KEY"
	}

	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
		    %s,
		    id varchar(36) UNIQUE NOT NULL,
		    name text NOT NULL,
		    problem text NOT NULL
	  	);
	`, definition.TicketTable, seqColumn)
}

type SQLTicketRepository struct {
	db      *sql.DB
	dialect Dialect
}

func (t *SQLTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	query := fmt.Sprintf("INSERT INTO %s (id, name, problem) VALUES (%s, %s, %s)",
		definition.TicketTable, t.dialect.placeholder(1), t.dialect.placeholder(2), t.dialect.placeholder(3))
	stmt, err := t.db.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	id := uuid.NewString()
	_, errCreate := stmt.ExecContext(ctx, id, ticket.Name, ticket.Problem)
	if errCreate != nil {
		return errCreate
	}

	ticket.SetID(id)
	return nil
}

func (t *SQLTicketRepository) FindAll(ctx context.Context) ([]model.Ticket, error) {
	query := fmt.Sprintf("SELECT id, name, problem FROM %s ORDER BY seq ASC", definition.TicketTable)
	rows, errQuery := t.db.QueryContext(ctx, query)
	if errQuery != nil {
		return nil, errQuery
	}
	defer rows.Close()

	tickets := []model.Ticket{}
	for rows.Next() {
		ticket, errScan := ticketScanner(rows)
		if errScan != nil {
			return nil, errScan
		}
		tickets = append(tickets, *ticket)
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errRows
	}

	return tickets, nil
}

func (t *SQLTicketRepository) DeleteByID(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = %s", definition.TicketTable, t.dialect.placeholder(1))
	stmt, err := t.db.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, errDelete := stmt.ExecContext(ctx, id)
	return errDelete
}

func ticketScanner(rows *sql.Rows) (*model.Ticket, error) {
	ticket := model.NewTicket()
	errScan := rows.Scan(&ticket.ID, &ticket.Name, &ticket.Problem)
	return ticket, errScan
}

func NewSQLTicketRepository(db *sql.DB, dialect Dialect) *SQLTicketRepository {
	return &SQLTicketRepository{db: db, dialect: dialect}
}
