package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type attributeUseCase struct {
	repo   attribute.Repository
	owners attribute.OwnerFinder
	logger logger.ZapLogger
}

func NewAttributeUseCase(repo attribute.Repository, owners attribute.OwnerFinder, log logger.ZapLogger) attribute.UseCase {
	return &attributeUseCase{
		repo:   repo,
		owners: owners,
		logger: log,
	}
}

func (uc *attributeUseCase) AddAttribute(ctx context.Context, input *dto.AttributeInput) (*model.Attribute, error) {
	if err := attribute.ValidateKind(input.Kind); err != nil {
		return nil, err
	}

	a := &model.Attribute{
		ID:             uuid.New().String(),
		CategoryNodeID: input.CategoryNodeID,
		NameEn:         input.NameEn,
		NameFr:         input.NameFr,
		AttributeType:  input.AttributeType,
		SortOrder:      input.SortOrder,
	}
	if err := attribute.Validate(a); err != nil {
		return nil, err
	}
	if err := uc.requireOwner(ctx, a.CategoryNodeID); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, input.Kind, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *attributeUseCase) UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.Attribute, error) {
	if err := attribute.ValidateKind(input.Kind); err != nil {
		return nil, err
	}

	a, err := uc.repo.FindByID(ctx, input.Kind, input.ID)
	if err != nil {
		return nil, err
	}

	a.NameEn = input.NameEn
	a.NameFr = input.NameFr
	a.AttributeType = input.AttributeType
	a.SortOrder = input.SortOrder
	if err := attribute.Validate(a); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, input.Kind, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *attributeUseCase) RemoveAttribute(ctx context.Context, kind model.AttributeKind, id string) error {
	if err := attribute.ValidateKind(kind); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, kind, id)
}

func (uc *attributeUseCase) ListAttributes(ctx context.Context, kind model.AttributeKind, categoryNodeID string) ([]model.Attribute, error) {
	if err := attribute.ValidateKind(kind); err != nil {
		return nil, err
	}
	return uc.repo.GetByOwner(ctx, kind, categoryNodeID)
}

func (uc *attributeUseCase) DeleteAttributesByCategoryNodeID(ctx context.Context, kind model.AttributeKind, categoryNodeID string) (bool, error) {
	if err := attribute.ValidateKind(kind); err != nil {
		return false, err
	}
	removed, err := uc.repo.DeleteByOwner(ctx, kind, categoryNodeID)
	if err != nil {
		return false, err
	}
	uc.logger.Debug("deleted attributes by owner",
		zap.String("kind", string(kind)),
		zap.String("category_node_id", categoryNodeID),
		zap.Bool("removed", removed),
	)
	return removed, nil
}

func (uc *attributeUseCase) requireOwner(ctx context.Context, categoryNodeID string) error {
	if _, err := uc.owners.FindByID(ctx, categoryNodeID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound("attribute.owner_missing",
				map[string]interface{}{"ID": categoryNodeID}, "category node %s does not exist", categoryNodeID)
		}
		return err
	}
	return nil
}
