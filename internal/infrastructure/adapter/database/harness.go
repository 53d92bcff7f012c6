package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/time"
)

// TestDBHostEnv gates integration tests; they skip when it is unset
const TestDBHostEnv = "TEST_DB_HOST"

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager configured from TEST_DB_* variables
func NewTestDBManager(t testing.TB, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          "postgres",
		Host:            getEnvOrDefault(TestDBHostEnv, "localhost"),
		Port:            getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "txfixture_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
		SavepointPrefix: getEnvOrDefault("TEST_DB_SAVEPOINT_PREFIX", DefaultSavepointPrefix),
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// RequireTestDB skips t unless TEST_DB_HOST is set; otherwise it connects,
// migrates and registers Close on cleanup.
func RequireTestDB(t testing.TB, logger coreport.Logger) *TestDBManager {
	t.Helper()

	if os.Getenv(TestDBHostEnv) == "" {
		t.Skipf("%s not set, skipping database test", TestDBHostEnv)
	}

	m := NewTestDBManager(t, logger)
	m.Connect(t)
	t.Cleanup(func() { m.Close(t) })
	m.SetupTestDB(t)
	return m
}

// Connect connects to the test database
func (m *TestDBManager) Connect(t testing.TB) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

// Close closes the test database connection
func (m *TestDBManager) Close(t testing.TB) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB creates the fixture tables
func (m *TestDBManager) SetupTestDB(t testing.TB) {
	t.Helper()

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// AmbientSession opens the per-test outer transaction and returns a joined
// session over it. Units of work built on the session may commit freely;
// everything is rolled back when t finishes.
func (m *TestDBManager) AmbientSession(t testing.TB) *GormSession {
	t.Helper()

	session, err := m.Manager.BeginSession(context.Background(), true)
	if err != nil {
		t.Fatalf("Failed to open ambient session: %v", err)
	}

	t.Cleanup(func() {
		if err := session.Rollback(context.Background()); err != nil {
			t.Errorf("Failed to roll back ambient session: %v", err)
		}
	})
	return session
}

// Helper functions to get environment variables or defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
