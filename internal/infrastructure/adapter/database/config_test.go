package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/config"
)

func validConfig() *Config {
	return &Config{
		Driver:          "postgres",
		Host:            "localhost",
		Port:            5432,
		Username:        "fixture",
		Password:        "fixture",
		Database:        "fixtures",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "warn",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
		SavepointPrefix: DefaultSavepointPrefix,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"mysql", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"no host", func(c *Config) { c.Host = "" }, "host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"no username", func(c *Config) { c.Username = "" }, "username is required"},
		{"no database", func(c *Config) { c.Database = "" }, "name is required"},
		{"bad ssl", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"no conns", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"negative idle", func(c *Config) { c.MaxIdleConns = -1 }, "max idle connections"},
		{"no timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"no attempts", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts"},
		{"empty prefix", func(c *Config) { c.SavepointPrefix = "" }, "savepoint prefix"},
		{"injected prefix", func(c *Config) { c.SavepointPrefix = "x; DROP TABLE hook_events" }, "savepoint prefix"},
		{"digit first prefix", func(c *Config) { c.SavepointPrefix = "1uow" }, "savepoint prefix"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=fixture password=fixture dbname=fixtures sslmode=disable",
		validConfig().DSN(),
	)
}

func TestDefaultConfig_Env(t *testing.T) {
	t.Setenv("TXF_DB_HOST", "db.internal")
	t.Setenv("TXF_DB_PORT", "6543")
	t.Setenv("TXF_DB_RETRY_ATTEMPTS", "not-a-number")

	c := DefaultConfig()

	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, 3, c.RetryAttempts)
	assert.Equal(t, DefaultSavepointPrefix, c.SavepointPrefix)
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	t.Run("File values fill unset credentials", func(t *testing.T) {
		t.Setenv("TXF_DB_HOST", "")
		t.Setenv("TXF_DB_USERNAME", "")

		app := &config.Config{
			Database: config.DatabaseConfig{
				Host:          "yaml-host",
				Port:          "5433",
				Username:      "fixture",
				Database:      "fixtures",
				MaxOpenConns:  4,
				QueryTimeout:  2 * time.Second,
				RetryAttempts: 2,
				LogLevel:      "silent",
			},
			Fixture: config.FixtureConfig{SavepointPrefix: "it"},
		}

		c := CreateConfigFromAppConfig(app)

		assert.Equal(t, "yaml-host", c.Host)
		assert.Equal(t, 5433, c.Port)
		assert.Equal(t, "fixture", c.Username)
		assert.Equal(t, 4, c.MaxOpenConns)
		assert.Equal(t, 2*time.Second, c.QueryTimeout)
		assert.Equal(t, 2, c.RetryAttempts)
		assert.Equal(t, "silent", c.LogLevel)
		assert.Equal(t, "it", c.SavepointPrefix)
	})

	t.Run("Environment credentials win", func(t *testing.T) {
		t.Setenv("TXF_DB_HOST", "env-host")

		c := CreateConfigFromAppConfig(&config.Config{
			Database: config.DatabaseConfig{Host: "yaml-host"},
		})

		assert.Equal(t, "env-host", c.Host)
	})
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("0"))
	assert.Equal(t, 0, ParsePort("99999"))
	assert.Equal(t, 0, ParsePort("pg"))
}
