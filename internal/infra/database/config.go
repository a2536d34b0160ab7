package database

import (
	"fmt"
	"os"
)

// Config is the immutable connection configuration read once at startup.
type Config struct {
	Dialect  Dialect
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSL      bool
}

// LoadConfigFromEnv builds the configuration from DB_* environment
// variables. DB_TYPE defaults to postgres; the port defaults to the
// dialect's standard port. Any other missing variable is an error, so a
// misconfigured process fails before it opens a pool.
func LoadConfigFromEnv() (*Config, error) {
	dialect := Dialect(os.Getenv("DB_TYPE"))
	if dialect == "" {
		dialect = DialectPostgres
	}
	if !dialect.Valid() {
		return nil, fmt.Errorf("unsupported DB_TYPE %q (expected %q or %q)", dialect, DialectPostgres, DialectMySQL)
	}

	cfg := &Config{
		Dialect:  dialect,
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSL:      os.Getenv("DB_SSL") == "true",
	}

	if cfg.Port == "" {
		if dialect == DialectMySQL {
			cfg.Port = "3306"
		} else {
			cfg.Port = "5432"
		}
	}

	for _, v := range []struct {
		name  string
		value string
	}{
		{"DB_HOST", cfg.Host},
		{"DB_USER", cfg.User},
		{"DB_PASSWORD", cfg.Password},
		{"DB_NAME", cfg.Name},
	} {
		if v.value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", v.name)
		}
	}

	return cfg, nil
}

// DSN renders the driver-specific connection string.
func (c *Config) DSN() string {
	if c.Dialect == DialectMySQL {
		// parseTime makes TIMESTAMP columns scan into time.Time;
		// clientFoundRows makes RowsAffected count matched rows, so an
		// update that writes identical values still reports the row.
		params := "parseTime=true&clientFoundRows=true"
		if c.SSL {
			params += "&tls=skip-verify"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
			c.User, c.Password, c.Host, c.Port, c.Name, params)
	}

	sslmode := "disable"
	if c.SSL {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslmode)
}
