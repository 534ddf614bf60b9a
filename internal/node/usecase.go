package node

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node/dto"
)

// AttributeGroup holds the attributes of one kind in display order.
type AttributeGroup struct {
	Kind       model.AttributeKind
	Attributes []model.Attribute
}

type UseCase interface {
	Tree() model.Tree

	AddNode(ctx context.Context, input *dto.AddNodeInput) (*model.Node, error)
	UpdateNode(ctx context.Context, input *dto.UpdateNodeInput) (*model.Node, error)
	DeleteNode(ctx context.Context, id string) error

	GetNode(ctx context.Context, id string) (*model.Node, error)
	GetChildren(ctx context.Context, parentID string) ([]model.Node, error)
	GetRootNodes(ctx context.Context) ([]model.Node, error)
	GetNodesByType(ctx context.Context, nodeType model.NodeType) ([]model.Node, error)
	SearchNodes(ctx context.Context, term string, limit int) ([]model.Node, error)

	// AddNodeWithAttributes groups the created attributes by kind, in order of first
	// appearance in the input.
	AddNodeWithAttributes(ctx context.Context, input *dto.NodeWithAttributesInput) (*model.Node, []AttributeGroup, error)
	AddMultipleNodesWithAttributes(ctx context.Context, inputs []dto.NodeWithAttributesInput) ([]model.Node, error)

	// Reindex pushes every node of the tree to the search index.
	Reindex(ctx context.Context) (int, error)
}
