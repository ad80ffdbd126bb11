// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"github.com/gnames/puyadb/internal/ioconfig"
	"github.com/gnames/puyadb/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "puyadb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It loads defaults with environment overrides (PUYADB_DATABASE_*,
// DB_*) and forces the database name to TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg, err := ioconfig.Load("")
	if err != nil {
		cfg = config.New()
	}

	cfg.Database.Database = TestDatabaseName
	cfg.Seed.WithProgress = false

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}
