package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"fanvote/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Store selects the persistence backend: "postgres" or "memory". The
	// memory backend keeps all state in process and is meant for local
	// development and tests.
	Store string `env:"STORE" envDefault:"postgres"`

	// RunSeed inserts demo campaigns, contestants and votes on startup.
	RunSeed bool `env:"RUN_SEED" envDefault:"false"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct. Ignored when Store is
	// "memory".
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Treasury configures the platform fee treasury. Environment variables
	// prefixed with TREASURY_ will populate this struct.
	Treasury configs.Treasury `envPrefix:"TREASURY_"`
}

// Load reads configuration from a .env file (when present) and the
// environment. If parsing fails, an error is returned. All fields are
// loaded with their specified defaults when no environment variable is
// provided.
func Load() (Config, error) {
	// missing .env is fine; the environment still applies
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
