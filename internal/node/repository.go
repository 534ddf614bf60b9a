package node

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Tree() model.Tree

	Create(ctx context.Context, node *model.Node) error
	FindByID(ctx context.Context, id string) (*model.Node, error)
	Update(ctx context.Context, node *model.Node) error
	Delete(ctx context.Context, id string) error

	// Reads ordered by (sort_order nulls last, name_en).
	FindChildren(ctx context.Context, parentID string) ([]model.Node, error)
	FindRoots(ctx context.Context) ([]model.Node, error)
	FindByType(ctx context.Context, nodeType model.NodeType) ([]model.Node, error)
	FindAll(ctx context.Context) ([]model.Node, error)
	SearchByName(ctx context.Context, term string, limit int) ([]model.Node, error)

	CountChildren(ctx context.Context, id string) (int, error)
	// IsAncestorOrSelf reports whether nodeID is candidateID or one of its ancestors.
	IsAncestorOrSelf(ctx context.Context, candidateID, nodeID string) (bool, error)
}

// ItemCounter is the slice of the item store the hierarchy needs to gate deletes.
type ItemCounter interface {
	CountActiveByCategory(ctx context.Context, categoryNodeID string) (int, error)
	CountActiveByProductNode(ctx context.Context, productNodeID string) (int, error)
}
