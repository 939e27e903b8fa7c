package config

import (
	"github.com/caarlos0/env/v11"

	"prose-marketing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Book is the static book identity advertised by the launchers.
	Book configs.Book `envPrefix:"BOOK_"`

	// Per-provider API settings for the channel launchers and the CRM.
	Amazon   configs.ChannelAPI `envPrefix:"AMAZON_"`
	Facebook configs.ChannelAPI `envPrefix:"FACEBOOK_"`
	BookBub  configs.ChannelAPI `envPrefix:"BOOKBUB_"`
	Email    configs.ChannelAPI `envPrefix:"EMAIL_"`
	Social   configs.ChannelAPI `envPrefix:"SOCIAL_"`
	CRM      configs.ChannelAPI `envPrefix:"CRM_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
