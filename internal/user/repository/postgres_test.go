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

func newUser(email string) *model.User {
	now := time.Now().UTC()
	return &model.User{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		PasswordHash: "$2a$10$hash",
		FirstName:    "Ada",
		Role:         "customer",
	}
}

func TestUserLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	u := newUser("  Ada@Example.COM ")
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, "ada@example.com", u.Email)

	found, err := repo.FindByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	err = repo.Create(ctx, newUser("ada@EXAMPLE.com"))
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	found.LastName = "Lovelace"
	require.NoError(t, repo.Update(ctx, found))
	found, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", found.LastName)

	other := newUser("grace@example.com")
	require.NoError(t, repo.Create(ctx, other))
	other.Email = "ADA@example.com"
	assert.True(t, errors.Is(repo.Update(ctx, other), apperror.ErrConflict))

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.FindByID(ctx, u.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, u.ID), apperror.ErrNotFound))
}
