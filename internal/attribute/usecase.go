package attribute

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	AddAttribute(ctx context.Context, input *dto.AttributeInput) (*model.Attribute, error)
	UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.Attribute, error)
	RemoveAttribute(ctx context.Context, kind model.AttributeKind, id string) error
	ListAttributes(ctx context.Context, kind model.AttributeKind, categoryNodeID string) ([]model.Attribute, error)
	DeleteAttributesByCategoryNodeID(ctx context.Context, kind model.AttributeKind, categoryNodeID string) (bool, error)
}
