package taxrate

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, rate *model.TaxRate) error
	FindByRegion(ctx context.Context, regionCode string) (*model.TaxRate, error)
	FindAll(ctx context.Context) ([]model.TaxRate, error)
	Update(ctx context.Context, rate *model.TaxRate) error
	Delete(ctx context.Context, id string) error
}
