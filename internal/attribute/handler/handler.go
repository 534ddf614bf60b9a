package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ AttributeServiceServer = (*AttributeHandler)(nil)

type AttributeHandler struct {
	uc     attribute.UseCase
	tr     apperror.Localizer
	logger logger.ZapLogger
}

func NewAttributeHandler(uc attribute.UseCase, tr apperror.Localizer, log logger.ZapLogger) *AttributeHandler {
	return &AttributeHandler{
		uc:     uc,
		tr:     tr,
		logger: log,
	}
}

func (h *AttributeHandler) fail(ctx context.Context, op string, err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		h.logger.Error("attribute operation failed", zap.String("op", op), zap.Error(err))
	}
	return apperror.ToStatus(err, h.tr, auth.GetLanguages(ctx)...)
}

func (h *AttributeHandler) AddAttribute(ctx context.Context, req *AddAttributeRequest) (*AttributeResponse, error) {
	kind := model.AttributeKind(req.Kind)
	a, err := h.uc.AddAttribute(ctx, &dto.AttributeInput{
		Kind:           kind,
		CategoryNodeID: req.CategoryNodeID,
		NameEn:         req.NameEn,
		NameFr:         req.NameFr,
		AttributeType:  req.AttributeType,
		SortOrder:      toIntPtr(req.SortOrder),
	})
	if err != nil {
		return nil, h.fail(ctx, "AddAttribute", err)
	}
	return &AttributeResponse{Attribute: mapModelToWire(kind, a)}, nil
}

func (h *AttributeHandler) UpdateAttribute(ctx context.Context, req *UpdateAttributeRequest) (*AttributeResponse, error) {
	kind := model.AttributeKind(req.Kind)
	a, err := h.uc.UpdateAttribute(ctx, &dto.UpdateAttributeInput{
		ID:            req.ID,
		Kind:          kind,
		NameEn:        req.NameEn,
		NameFr:        req.NameFr,
		AttributeType: req.AttributeType,
		SortOrder:     toIntPtr(req.SortOrder),
	})
	if err != nil {
		return nil, h.fail(ctx, "UpdateAttribute", err)
	}
	return &AttributeResponse{Attribute: mapModelToWire(kind, a)}, nil
}

func (h *AttributeHandler) RemoveAttribute(ctx context.Context, req *RemoveAttributeRequest) (*emptypb.Empty, error) {
	if err := h.uc.RemoveAttribute(ctx, model.AttributeKind(req.Kind), req.ID); err != nil {
		return nil, h.fail(ctx, "RemoveAttribute", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *AttributeHandler) ListAttributes(ctx context.Context, req *ByCategoryRequest) (*ListAttributesResponse, error) {
	kind := model.AttributeKind(req.Kind)
	attrs, err := h.uc.ListAttributes(ctx, kind, req.CategoryNodeID)
	if err != nil {
		return nil, h.fail(ctx, "ListAttributes", err)
	}

	resp := &ListAttributesResponse{Attributes: make([]*Attribute, 0, len(attrs))}
	for i := range attrs {
		resp.Attributes = append(resp.Attributes, mapModelToWire(kind, &attrs[i]))
	}
	return resp, nil
}

func (h *AttributeHandler) DeleteAttributesByCategory(ctx context.Context, req *ByCategoryRequest) (*DeleteByCategoryResponse, error) {
	removed, err := h.uc.DeleteAttributesByCategoryNodeID(ctx, model.AttributeKind(req.Kind), req.CategoryNodeID)
	if err != nil {
		return nil, h.fail(ctx, "DeleteAttributesByCategory", err)
	}
	return &DeleteByCategoryResponse{Removed: removed}, nil
}
