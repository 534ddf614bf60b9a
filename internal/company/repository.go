package company

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	// Create also writes c.Address when set, in the same transaction.
	Create(ctx context.Context, c *model.Company) error
	FindByID(ctx context.Context, id string) (*model.Company, error)
	FindByOwner(ctx context.Context, ownerUserID string) ([]model.Company, error)
	Update(ctx context.Context, c *model.Company) error
	Delete(ctx context.Context, id string) error
	FindAddress(ctx context.Context, id string) (*model.Address, error)
}
