// Package file loads server configuration from a TOML file with
// environment variable overrides. Environment wins over file contents,
// matching the deployment convention of the hosted bot.
package file

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables overriding file values.
const (
	EnvPostgresDSN     = "POSTGRES_DSN"
	EnvMongoURI        = "MONGODB_URI"
	EnvMongoDatabase   = "MONGODB_DATABASE"
	EnvMongoCollection = "MONGODB_COLLECTION"
)

// DefaultCollection is the knowledge collection queried by the search
// tool when none is configured.
const DefaultCollection = "knowledge"

// Config holds the connection settings for both backing stores.
type Config struct {
	Postgres PostgresConfig `toml:"postgres"`
	MongoDB  MongoConfig    `toml:"mongodb"`
}

// PostgresConfig configures the relational store connection.
type PostgresConfig struct {
	// DSN is the PostgreSQL connection string.
	DSN string `toml:"dsn"`
}

// MongoConfig configures the document store connection.
type MongoConfig struct {
	// URI is the MongoDB connection URI.
	URI string `toml:"uri"`

	// Database is the database holding the knowledge collection.
	Database string `toml:"database"`

	// Collection is the knowledge collection name.
	Collection string `toml:"collection"`
}

// Validation errors.
var (
	ErrMissingPostgresDSN = errors.New("config: postgres dsn is required")
	ErrMissingMongoURI    = errors.New("config: mongodb uri is required")
	ErrMissingMongoDB     = errors.New("config: mongodb database is required")
)

// Load reads configuration from the given TOML file, then applies
// environment overrides and defaults. An empty path skips the file and
// uses environment variables alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPostgresDSN); v != "" {
		c.Postgres.DSN = v
	}
	if v := os.Getenv(EnvMongoURI); v != "" {
		c.MongoDB.URI = v
	}
	if v := os.Getenv(EnvMongoDatabase); v != "" {
		c.MongoDB.Database = v
	}
	if v := os.Getenv(EnvMongoCollection); v != "" {
		c.MongoDB.Collection = v
	}
}

func (c *Config) applyDefaults() {
	if c.MongoDB.Collection == "" {
		c.MongoDB.Collection = DefaultCollection
	}
}

// Validate checks the required connection settings are present.
func (c *Config) Validate() error {
	if c.Postgres.DSN == "" {
		return ErrMissingPostgresDSN
	}
	if c.MongoDB.URI == "" {
		return ErrMissingMongoURI
	}
	if c.MongoDB.Database == "" {
		return ErrMissingMongoDB
	}
	return nil
}
