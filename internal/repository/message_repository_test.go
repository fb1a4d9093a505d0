package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// newTestDB opens an isolated in-memory database with the same error
// translation the production MySQL connection uses.
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

	assert.NoError(t, gdb.AutoMigrate(&model.Message{}))
	return gdb
}

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now()
	older := &model.Message{
		Name:      "Early Bird",
		Email:     "early@example.com",
		Subject:   "First",
		Content:   "I was here first.",
		CreatedAt: now.Add(-time.Hour),
	}
	newer := &model.Message{
		Name:      "Late Comer",
		Email:     "late@example.com",
		Subject:   "Second",
		Content:   "Fresh off the form.",
		CreatedAt: now,
	}
	assert.NoError(t, repo.Create(ctx, older))
	assert.NoError(t, repo.Create(ctx, newer))

	msgs, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, "Second", msgs[0].Subject)
	assert.Equal(t, "First", msgs[1].Subject)
}

func TestMessageRepository_FindByID(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))
	ctx := context.Background()

	msg := &model.Message{Name: "Visitor", Email: "v@example.com", Subject: "Hi", Content: "Hello"}
	assert.NoError(t, repo.Create(ctx, msg))

	found, err := repo.FindByID(ctx, msg.ID)
	assert.NoError(t, err)
	assert.Equal(t, msg.ID, found.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMessageRepository_Delete(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))
	ctx := context.Background()

	msg := &model.Message{Name: "Visitor", Email: "v@example.com", Subject: "Hi", Content: "Hello"}
	assert.NoError(t, repo.Create(ctx, msg))

	assert.NoError(t, repo.Delete(ctx, msg.ID))
	assert.ErrorIs(t, repo.Delete(ctx, msg.ID), apperrors.ErrNotFound)

	msgs, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, msgs)
}
