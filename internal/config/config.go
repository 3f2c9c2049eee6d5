package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"ticketdesk/definition"
	"time"
)

type (
	Config struct {
		Port         string        `toml:"port"`
		OpMode       string        `toml:"op_mode"`
		StoreDriver  string        `toml:"store_driver"`
		StaticDir    string        `toml:"static_dir"`
		ReadTimeout  time.Duration `toml:"read_timeout"`
		WriteTimeout time.Duration `toml:"write_timeout"`

		Mongo    MongoConfig    `toml:"mongo"`
		Postgres PostgresConfig `toml:"postgres"`
		SQLite   SQLiteConfig   `toml:"sqlite"`
		Redis    RedisConfig    `toml:"redis"`
	}

	MongoConfig struct {
		URI        string `toml:"uri"`
		Database   string `toml:"database"`
		Collection string `toml:"collection"`
	}

	PostgresConfig struct {
		Host     string `toml:"host"`
		Port     string `toml:"port"`
		User     string `toml:"user"`
		Password string `toml:"password"`
		Name     string `toml:"name"`
		SSLMode  string `toml:"sslmode"`
	}

	SQLiteConfig struct {
		Path string `toml:"path"`
	}

	RedisConfig struct {
		Host      string `toml:"host"`
		User      string `toml:"user"`
		Password  string `toml:"password"`
		Clustered bool   `toml:"clustered"`
	}
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

const (
	OpModeAll    = ""
	OpModeSetter = "SETTER"
	OpModeGetter = "GETTER"
)

func Default() *Config {
	return &Config{
		Port:         definition.DefaultPort,
		StoreDriver:  DriverMongo,
		ReadTimeout:  definition.DefaultReadTimeout,
		WriteTimeout: definition.DefaultWriteTimeout,
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   "tickets",
			Collection: definition.TicketCollection,
		},
		Postgres: PostgresConfig{
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		SQLite: SQLiteConfig{
			Path: "tickets.db",
		},
	}
}

// Load layers defaults, the TOML file named by TICKETDESK_CONFIG, the given
// dotenv files (".env" when none are given) and the process environment, in
// that order. Missing dotenv files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		if errEnv := godotenv.Load(envFile); errEnv != nil && !errors.Is(errEnv, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, errEnv)
		}
	}

	cfg := Default()
	if path := os.Getenv("TICKETDESK_CONFIG"); path != "" {
		if _, errDecode := toml.DecodeFile(path, cfg); errDecode != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, errDecode)
		}
	}

	if errEnv := applyEnv(cfg); errEnv != nil {
		return nil, errEnv
	}

	if errValidate := cfg.Validate(); errValidate != nil {
		return nil, errValidate
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "RUNNING_PORT")
	setString(&cfg.OpMode, "OP_MODE")
	setString(&cfg.StoreDriver, "STORE_DRIVER")
	setString(&cfg.StaticDir, "STATIC_DIR")

	setString(&cfg.Mongo.URI, "MONGO_URI")
	setString(&cfg.Mongo.Database, "MONGO_DATABASE")
	setString(&cfg.Mongo.Collection, "MONGO_COLLECTION")

	setString(&cfg.Postgres.Host, "DB_HOST")
	setString(&cfg.Postgres.Port, "DB_PORT")
	setString(&cfg.Postgres.User, "DB_USER")
	setString(&cfg.Postgres.Password, "DB_PASSWORD")
	setString(&cfg.Postgres.Name, "DB_NAME")
	setString(&cfg.Postgres.SSLMode, "DB_SSLMODE")

	setString(&cfg.SQLite.Path, "SQLITE_PATH")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.Redis.User, "REDIS_USER")
	setString(&cfg.Redis.Password, "REDIS_PASS")

	if value := os.Getenv("REDIS_CLUSTERED"); value != "" {
		clustered, errParse := strconv.ParseBool(value)
		if errParse != nil {
			return fmt.Errorf("invalid REDIS_CLUSTERED %q: %w", value, errParse)
		}
		cfg.Redis.Clustered = clustered
	}

	for key, target := range map[string]*time.Duration{
		"READ_TIMEOUT":  &cfg.ReadTimeout,
		"WRITE_TIMEOUT": &cfg.WriteTimeout,
	} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		duration, errParse := time.ParseDuration(value)
		if errParse != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, errParse)
		}
		*target = duration
	}

	return nil
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(c.StoreDriver)
	switch c.StoreDriver {
	case DriverMongo, DriverPostgres, DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", definition.UnknownDriver, c.StoreDriver)
	}

	switch c.OpMode {
	case OpModeAll, OpModeSetter, OpModeGetter:
	default:
		return fmt.Errorf("invalid OP_MODE %q", c.OpMode)
	}

	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.StoreDriver == DriverRedis && c.Redis.Host == "" {
		return errors.New("REDIS_HOST must be set for the redis driver")
	}

	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
