package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionExpiry(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	userID := testutil.InsertUser(t, db, "session@example.com")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	live := &model.Session{ID: uuid.New().String(), UserID: userID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	stale := &model.Session{ID: uuid.New().String(), UserID: userID, ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, stale))

	got, err := repo.FindValid(ctx, live.ID, now)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)

	_, err = repo.FindValid(ctx, stale.ID, now)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// Expiry is exclusive: a session is dead at its expires_at instant.
	_, err = repo.FindValid(ctx, live.ID, live.ExpiresAt)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.Delete(ctx, live.ID))
	_, err = repo.FindValid(ctx, live.ID, now)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
