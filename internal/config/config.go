package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters. It is loaded once
// at startup and passed explicitly; handlers never read the
// environment themselves.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"1"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"MYSQL_"`
	CORS     CORS     `envPrefix:"CORS_"`
	Checks   Checks   `envPrefix:"CHECKS_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters.
type Database struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3307"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD" envDefault:"root"`
	Name     string `env:"DATABASE" envDefault:"ms1_db"`
}

// CORS contains cross-origin request parameters.
type CORS struct {
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// Checks toggles the consistency checks that differ between deployed
// variants of the service. Defaults match the strictest variant.
type Checks struct {
	// EnforceUniqueEmail pre-checks email collisions on user
	// create/update.
	EnforceUniqueEmail bool `env:"ENFORCE_UNIQUE_EMAIL" envDefault:"true"`
	// NotFoundOnEmptyList makes list endpoints answer 404 instead of
	// an empty sequence.
	NotFoundOnEmptyList bool `env:"NOT_FOUND_ON_EMPTY_LIST" envDefault:"true"`
	// ExistenceBeforeDelete looks the row up before deleting it so a
	// missing id fails with 404.
	ExistenceBeforeDelete bool `env:"EXISTENCE_BEFORE_DELETE" envDefault:"true"`
}

// Origins splits the configured origin list. A wildcard stays a single
// "*" entry.
func (c CORS) Origins() []string {
	if c.AllowedOrigins == "*" {
		return []string{"*"}
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// DSN builds the MySQL connection string. An empty name yields a
// server-level DSN used for database provisioning.
func (d Database) DSN(name string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Port, name)
}

// NewConfig loads configuration from a .env file, if present, and the
// environment.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
