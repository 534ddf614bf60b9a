package session

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.Session) error
	// FindValid returns the session only while it has not expired at now.
	FindValid(ctx context.Context, id string, now time.Time) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
