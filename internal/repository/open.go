package repository

import (
	"context"
	"fmt"
	"ticketdesk/definition"
	"ticketdesk/internal/config"
	"ticketdesk/internal/dbconn"
)

// Open connects to the configured store. The returned func releases the
// connection.
func Open(ctx context.Context, cfg *config.Config) (TicketRepository, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, errConnect := dbconn.ConnectMongo(ctx, cfg.Mongo.URI)
		if errConnect != nil {
			return nil, nil, errConnect
		}
		collection := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		closer := func() error { return client.Disconnect(context.Background()) }
		return NewMongoTicketRepository(collection), closer, nil

	case config.DriverPostgres:
		db, errConnect := dbconn.CreatePostgresConnection(ctx, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User,
			cfg.Postgres.Password, cfg.Postgres.Name, cfg.Postgres.SSLMode)
		if errConnect != nil {
			return nil, nil, errConnect
		}
		return NewSQLTicketRepository(db, Postgres), db.Close, nil

	case config.DriverSQLite:
		db, errConnect := dbconn.CreateSQLiteConnection(ctx, cfg.SQLite.Path)
		if errConnect != nil {
			return nil, nil, errConnect
		}
		if _, errMigrate := db.ExecContext(ctx, TicketTableDDL(SQLite)); errMigrate != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to create ticket table: %w", errMigrate)
		}
		return NewSQLTicketRepository(db, SQLite), db.Close, nil

	case config.DriverRedis:
		client, errConnect := dbconn.ConnectRedis(ctx, cfg.Redis.Host, cfg.Redis.User, cfg.Redis.Password, cfg.Redis.Clustered)
		if errConnect != nil {
			return nil, nil, errConnect
		}
		return NewRedisTicketRepository(client), client.Close, nil

	case config.DriverMemory:
		return NewMemoryTicketRepository(), func() error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", definition.UnknownDriver, cfg.StoreDriver)
}
