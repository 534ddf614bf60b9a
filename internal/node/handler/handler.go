package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node"
	"github.com/fekuna/omnipos-catalog-service/internal/node/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ NodeServiceServer = (*NodeHandler)(nil)

type NodeHandler struct {
	trees  map[model.Tree]node.UseCase
	tr     apperror.Localizer
	logger logger.ZapLogger
}

// NewNodeHandler serves one use case per tree. Requests without a tree target the
// category tree.
func NewNodeHandler(ucs []node.UseCase, tr apperror.Localizer, log logger.ZapLogger) *NodeHandler {
	trees := make(map[model.Tree]node.UseCase, len(ucs))
	for _, uc := range ucs {
		trees[uc.Tree()] = uc
	}
	return &NodeHandler{
		trees:  trees,
		tr:     tr,
		logger: log,
	}
}

func (h *NodeHandler) useCase(tree string) (node.UseCase, error) {
	t := model.Tree(tree)
	if t == "" {
		t = model.TreeCategory
	}
	uc, ok := h.trees[t]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown tree %q", tree)
	}
	return uc, nil
}

func (h *NodeHandler) fail(ctx context.Context, op string, err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		h.logger.Error("node operation failed", zap.String("op", op), zap.Error(err))
	}
	return apperror.ToStatus(err, h.tr, auth.GetLanguages(ctx)...)
}

func (h *NodeHandler) AddNode(ctx context.Context, req *AddNodeRequest) (*NodeResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}

	n, err := uc.AddNode(ctx, toAddInput(req))
	if err != nil {
		return nil, h.fail(ctx, "AddNode", err)
	}
	return &NodeResponse{Node: mapModelToWire(n)}, nil
}

func (h *NodeHandler) UpdateNode(ctx context.Context, req *UpdateNodeRequest) (*NodeResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}

	n, err := uc.UpdateNode(ctx, &dto.UpdateNodeInput{
		ID:        req.ID,
		NameEn:    req.NameEn,
		NameFr:    req.NameFr,
		NodeType:  model.NodeType(req.NodeType),
		ParentID:  optionalID(req.ParentID),
		IsActive:  req.IsActive,
		SortOrder: toIntPtr(req.SortOrder),
	})
	if err != nil {
		return nil, h.fail(ctx, "UpdateNode", err)
	}
	return &NodeResponse{Node: mapModelToWire(n)}, nil
}

func (h *NodeHandler) DeleteNode(ctx context.Context, req *NodeRequest) (*emptypb.Empty, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	if err := uc.DeleteNode(ctx, req.ID); err != nil {
		return nil, h.fail(ctx, "DeleteNode", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *NodeHandler) GetNode(ctx context.Context, req *NodeRequest) (*NodeResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	n, err := uc.GetNode(ctx, req.ID)
	if err != nil {
		return nil, h.fail(ctx, "GetNode", err)
	}
	return &NodeResponse{Node: mapModelToWire(n)}, nil
}

func (h *NodeHandler) ListChildren(ctx context.Context, req *ListChildrenRequest) (*ListNodesResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	nodes, err := uc.GetChildren(ctx, req.ParentID)
	if err != nil {
		return nil, h.fail(ctx, "ListChildren", err)
	}
	return &ListNodesResponse{Nodes: mapNodes(nodes)}, nil
}

func (h *NodeHandler) ListRootNodes(ctx context.Context, req *ListRootNodesRequest) (*ListNodesResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	nodes, err := uc.GetRootNodes(ctx)
	if err != nil {
		return nil, h.fail(ctx, "ListRootNodes", err)
	}
	return &ListNodesResponse{Nodes: mapNodes(nodes)}, nil
}

func (h *NodeHandler) ListNodesByType(ctx context.Context, req *ListNodesByTypeRequest) (*ListNodesResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	nodes, err := uc.GetNodesByType(ctx, model.NodeType(req.NodeType))
	if err != nil {
		return nil, h.fail(ctx, "ListNodesByType", err)
	}
	return &ListNodesResponse{Nodes: mapNodes(nodes)}, nil
}

func (h *NodeHandler) SearchNodes(ctx context.Context, req *SearchNodesRequest) (*ListNodesResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	nodes, err := uc.SearchNodes(ctx, req.Query, int(req.Limit))
	if err != nil {
		return nil, h.fail(ctx, "SearchNodes", err)
	}
	return &ListNodesResponse{Nodes: mapNodes(nodes)}, nil
}

func (h *NodeHandler) AddNodeWithAttributes(ctx context.Context, req *AddNodeWithAttributesRequest) (*AddNodeWithAttributesResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}
	if req.Entry == nil || req.Entry.Node == nil {
		return nil, status.Error(codes.InvalidArgument, "entry.node is required")
	}

	input := toEntryInput(req.Entry)
	n, groups, err := uc.AddNodeWithAttributes(ctx, &input)
	if err != nil {
		return nil, h.fail(ctx, "AddNodeWithAttributes", err)
	}

	resp := &AddNodeWithAttributesResponse{
		Node:       mapModelToWire(n),
		Attributes: make([]*Attribute, 0, len(input.Attributes)),
	}
	for _, g := range groups {
		for i := range g.Attributes {
			resp.Attributes = append(resp.Attributes, mapAttribute(g.Kind, &g.Attributes[i]))
		}
	}
	return resp, nil
}

func (h *NodeHandler) AddMultipleNodesWithAttributes(ctx context.Context, req *AddMultipleNodesRequest) (*ListNodesResponse, error) {
	uc, err := h.useCase(req.Tree)
	if err != nil {
		return nil, err
	}

	inputs := make([]dto.NodeWithAttributesInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		if e == nil || e.Node == nil {
			return nil, status.Error(codes.InvalidArgument, "every entry needs a node")
		}
		inputs = append(inputs, toEntryInput(e))
	}

	nodes, err := uc.AddMultipleNodesWithAttributes(ctx, inputs)
	if err != nil {
		return nil, h.fail(ctx, "AddMultipleNodesWithAttributes", err)
	}
	return &ListNodesResponse{Nodes: mapNodes(nodes)}, nil
}

func toAddInput(req *AddNodeRequest) *dto.AddNodeInput {
	return &dto.AddNodeInput{
		ID:        req.ID,
		NameEn:    req.NameEn,
		NameFr:    req.NameFr,
		NodeType:  model.NodeType(req.NodeType),
		ParentID:  optionalID(req.ParentID),
		IsActive:  req.IsActive,
		SortOrder: toIntPtr(req.SortOrder),
	}
}

func toEntryInput(e *NodeWithAttributes) dto.NodeWithAttributesInput {
	input := dto.NodeWithAttributesInput{Node: *toAddInput(e.Node)}
	for _, a := range e.Attributes {
		if a == nil {
			continue
		}
		input.Attributes = append(input.Attributes, dto.AttributeInput{
			Kind:          model.AttributeKind(a.Kind),
			NameEn:        a.NameEn,
			NameFr:        a.NameFr,
			AttributeType: a.AttributeType,
			SortOrder:     toIntPtr(a.SortOrder),
		})
	}
	return input
}
