package handler

import (
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Wire messages for omnipos.catalog.v1.NodeService. They travel as JSON.

type Node struct {
	ID        string    `json:"id"`
	NameEn    string    `json:"name_en"`
	NameFr    string    `json:"name_fr"`
	NodeType  string    `json:"node_type"`
	ParentID  string    `json:"parent_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	SortOrder *int32    `json:"sort_order,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Attribute struct {
	ID             string `json:"id,omitempty"`
	Kind           string `json:"kind"`
	CategoryNodeID string `json:"category_node_id,omitempty"`
	NameEn         string `json:"name_en"`
	NameFr         string `json:"name_fr"`
	AttributeType  string `json:"attribute_type"`
	SortOrder      *int32 `json:"sort_order,omitempty"`
}

type AddNodeRequest struct {
	Tree      string `json:"tree,omitempty"`
	ID        string `json:"id,omitempty"`
	NameEn    string `json:"name_en"`
	NameFr    string `json:"name_fr"`
	NodeType  string `json:"node_type"`
	ParentID  string `json:"parent_id,omitempty"`
	IsActive  *bool  `json:"is_active,omitempty"`
	SortOrder *int32 `json:"sort_order,omitempty"`
}

type UpdateNodeRequest struct {
	Tree      string `json:"tree,omitempty"`
	ID        string `json:"id"`
	NameEn    string `json:"name_en"`
	NameFr    string `json:"name_fr"`
	NodeType  string `json:"node_type,omitempty"`
	ParentID  string `json:"parent_id,omitempty"`
	IsActive  bool   `json:"is_active"`
	SortOrder *int32 `json:"sort_order,omitempty"`
}

type NodeRequest struct {
	Tree string `json:"tree,omitempty"`
	ID   string `json:"id"`
}

type NodeResponse struct {
	Node *Node `json:"node"`
}

type ListChildrenRequest struct {
	Tree     string `json:"tree,omitempty"`
	ParentID string `json:"parent_id"`
}

type ListRootNodesRequest struct {
	Tree string `json:"tree,omitempty"`
}

type ListNodesByTypeRequest struct {
	Tree     string `json:"tree,omitempty"`
	NodeType string `json:"node_type"`
}

type SearchNodesRequest struct {
	Tree  string `json:"tree,omitempty"`
	Query string `json:"query"`
	Limit int32  `json:"limit,omitempty"`
}

type ListNodesResponse struct {
	Nodes []*Node `json:"nodes"`
}

type NodeWithAttributes struct {
	Node       *AddNodeRequest `json:"node"`
	Attributes []*Attribute    `json:"attributes,omitempty"`
}

type AddNodeWithAttributesRequest struct {
	Tree  string              `json:"tree,omitempty"`
	Entry *NodeWithAttributes `json:"entry"`
}

type AddNodeWithAttributesResponse struct {
	Node       *Node        `json:"node"`
	Attributes []*Attribute `json:"attributes"`
}

type AddMultipleNodesRequest struct {
	Tree    string                `json:"tree,omitempty"`
	Entries []*NodeWithAttributes `json:"entries"`
}

func mapModelToWire(n *model.Node) *Node {
	out := &Node{
		ID:        n.ID,
		NameEn:    n.NameEn,
		NameFr:    n.NameFr,
		NodeType:  string(n.NodeType),
		IsActive:  n.IsActive,
		SortOrder: toInt32Ptr(n.SortOrder),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.ParentID != nil {
		out.ParentID = *n.ParentID
	}
	return out
}

func mapNodes(nodes []model.Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for i := range nodes {
		out = append(out, mapModelToWire(&nodes[i]))
	}
	return out
}

func mapAttribute(kind model.AttributeKind, a *model.Attribute) *Attribute {
	return &Attribute{
		ID:             a.ID,
		Kind:           string(kind),
		CategoryNodeID: a.CategoryNodeID,
		NameEn:         a.NameEn,
		NameFr:         a.NameFr,
		AttributeType:  a.AttributeType,
		SortOrder:      toInt32Ptr(a.SortOrder),
	}
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
