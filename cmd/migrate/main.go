package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"io"
	"log"
	"os"
	"ticketdesk/internal/dbconn"
	"ticketdesk/internal/repository"
	"time"
)

type MigrationConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Database   string
	SSLMode    string
	SQLitePath string
	Help       bool
}

func ParseMigrationArgs(args []string) (*MigrationConfig, error) {
	config := &MigrationConfig{}

	flags := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&config.Driver, "driver", "postgres", "Store driver (postgres, sqlite)")
	flags.StringVar(&config.Host, "host", "localhost", "Database host")
	flags.StringVar(&config.Port, "port", "5432", "Database port")
	flags.StringVar(&config.User, "user", "", "Database user (required for postgres)")
	flags.StringVar(&config.Password, "password", "", "Database password (required for postgres)")
	flags.StringVar(&config.Database, "database", "", "Database name (required for postgres)")
	flags.StringVar(&config.SSLMode, "sslmode", "disable", "SSL mode (disable, require, verify-ca, verify-full)")
	flags.StringVar(&config.SQLitePath, "sqlite-path", "tickets.db", "SQLite database file")
	flags.BoolVarP(&config.Help, "help", "h", false, "Show help message")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return config, nil
}

func ShowHelp(w io.Writer) {
	fmt.Fprintln(w, "Ticket Desk Migration Tool")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  migrate [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --driver string       Store driver: postgres, sqlite (default: postgres)")
	fmt.Fprintln(w, "  --host string         Database host (default: localhost)")
	fmt.Fprintln(w, "  --port string         Database port (default: 5432)")
	fmt.Fprintln(w, "  --user string         Database user (required for postgres)")
	fmt.Fprintln(w, "  --password string     Database password (required for postgres)")
	fmt.Fprintln(w, "  --database string     Database name (required for postgres)")
	fmt.Fprintln(w, "  --sslmode string      SSL mode: disable, require, verify-ca, verify-full (default: disable)")
	fmt.Fprintln(w, "  --sqlite-path string  SQLite database file (default: tickets.db)")
	fmt.Fprintln(w, "  --help, -h            Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  migrate --user myuser --password mypass --database tickets")
	fmt.Fprintln(w, "  migrate --driver sqlite --sqlite-path /var/lib/ticketdesk/tickets.db")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tables created:")
	fmt.Fprintln(w, "  - ticket: Support tickets (id, name, problem)")
}

func ValidateConfig(config *MigrationConfig) error {
	switch config.Driver {
	case "postgres":
		if config.User == "" {
			return errors.New("database user is required (use --user flag)")
		}
		if config.Password == "" {
			return errors.New("database password is required (use --password flag)")
		}
		if config.Database == "" {
			return errors.New("database name is required (use --database flag)")
		}
	case "sqlite":
		if config.SQLitePath == "" {
			return errors.New("sqlite path is required (use --sqlite-path flag)")
		}
	default:
		return fmt.Errorf("unsupported driver %q (use postgres or sqlite)", config.Driver)
	}
	return nil
}

func openDatabase(ctx context.Context, config *MigrationConfig) (*sql.DB, repository.Dialect, error) {
	if config.Driver == "sqlite" {
		db, err := dbconn.CreateSQLiteConnection(ctx, config.SQLitePath)
		return db, repository.SQLite, err
	}

	db, err := dbconn.CreatePostgresConnection(ctx, config.Host, config.Port, config.User, config.Password, config.Database, config.SSLMode)
	return db, repository.Postgres, err
}

func CreateTables(ctx context.Context, config *MigrationConfig) error {
	db, dialect, errOpen := openDatabase(ctx, config)
	if errOpen != nil {
		return errOpen
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()

	return createTicketTable(ctx, db, dialect)
}

func createTicketTable(ctx context.Context, db *sql.DB, dialect repository.Dialect) error {
	_, errCreateTicketTable := db.ExecContext(ctx, repository.TicketTableDDL(dialect))
	if errCreateTicketTable != nil {
		return fmt.Errorf("failed to create ticket table: %w", errCreateTicketTable)
	}

	log.Println("Ticket table created successfully")
	return nil
}

func StartMigration(args []string) int {
	config, errParse := ParseMigrationArgs(args)
	if errParse != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", errParse)
		ShowHelp(os.Stderr)
		return 2
	}

	if config.Help {
		ShowHelp(os.Stdout)
		return 0
	}

	if err := ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		ShowHelp(os.Stderr)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if config.Driver == "sqlite" {
		log.Printf("Opening sqlite database: %s", config.SQLitePath)
	} else {
		log.Printf("Connecting to database: %s@%s:%s/%s", config.User, config.Host, config.Port, config.Database)
	}

	if err := CreateTables(ctx, config); err != nil {
		log.Printf("Migration failed: %v", err)
		return 1
	}

	log.Println("Migration completed successfully")
	return 0
}

func main() {
	os.Exit(StartMigration(os.Args[1:]))
}
