package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio/internal/model"
)

// newTestDB opens an isolated in-memory database with the same error
// translation the production MySQL connection uses, so duplicate-key
// detection behaves identically in tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	sqlDB, err := gdb.DB()
	assert.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, gdb.AutoMigrate(
		&model.Profile{},
		&model.Skill{},
		&model.Project{},
		&model.Certificate{},
		&model.Message{},
	))
	return gdb
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
