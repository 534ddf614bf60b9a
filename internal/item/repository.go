package item

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindByCompany(ctx context.Context, companyID string, includeDeleted bool) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	SoftDelete(ctx context.Context, id string) error

	// Counts used to gate node deletion.
	CountActiveByCategory(ctx context.Context, categoryNodeID string) (int, error)
	CountActiveByProductNode(ctx context.Context, productNodeID string) (int, error)

	// Variants
	CreateVariant(ctx context.Context, v *model.ItemVariant) error
	FindVariantByID(ctx context.Context, id string) (*model.ItemVariant, error)
	FindVariantsByItem(ctx context.Context, itemID string) ([]model.ItemVariant, error)
	UpdateVariant(ctx context.Context, v *model.ItemVariant) error
	SoftDeleteVariant(ctx context.Context, id string) error
	// AdjustStock adds delta to the variant's stock and rejects results below zero.
	AdjustStock(ctx context.Context, variantID string, delta int) (*model.ItemVariant, error)
}
