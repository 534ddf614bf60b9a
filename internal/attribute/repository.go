package attribute

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, kind model.AttributeKind, attr *model.Attribute) error
	CreateBatch(ctx context.Context, kind model.AttributeKind, attrs []model.Attribute) error
	FindByID(ctx context.Context, kind model.AttributeKind, id string) (*model.Attribute, error)
	Update(ctx context.Context, kind model.AttributeKind, attr *model.Attribute) error
	Delete(ctx context.Context, kind model.AttributeKind, id string) error

	// GetByOwner returns the node's attributes ordered as Compare orders them.
	GetByOwner(ctx context.Context, kind model.AttributeKind, categoryNodeID string) ([]model.Attribute, error)
	// DeleteByOwner reports whether at least one row was removed.
	DeleteByOwner(ctx context.Context, kind model.AttributeKind, categoryNodeID string) (bool, error)
}

// OwnerFinder looks up the category tree nodes attributes hang under. The category
// node repository satisfies it.
type OwnerFinder interface {
	FindByID(ctx context.Context, id string) (*model.Node, error)
}
