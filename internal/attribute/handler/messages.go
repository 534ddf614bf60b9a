package handler

import "github.com/fekuna/omnipos-catalog-service/internal/model"

type Attribute struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	CategoryNodeID string `json:"category_node_id"`
	NameEn         string `json:"name_en"`
	NameFr         string `json:"name_fr"`
	AttributeType  string `json:"attribute_type"`
	SortOrder      *int32 `json:"sort_order,omitempty"`
}

type AddAttributeRequest struct {
	Kind           string `json:"kind"`
	CategoryNodeID string `json:"category_node_id"`
	NameEn         string `json:"name_en"`
	NameFr         string `json:"name_fr"`
	AttributeType  string `json:"attribute_type"`
	SortOrder      *int32 `json:"sort_order,omitempty"`
}

type UpdateAttributeRequest struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	NameEn        string `json:"name_en"`
	NameFr        string `json:"name_fr"`
	AttributeType string `json:"attribute_type"`
	SortOrder     *int32 `json:"sort_order,omitempty"`
}

type AttributeResponse struct {
	Attribute *Attribute `json:"attribute"`
}

type RemoveAttributeRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type ByCategoryRequest struct {
	Kind           string `json:"kind"`
	CategoryNodeID string `json:"category_node_id"`
}

type ListAttributesResponse struct {
	Attributes []*Attribute `json:"attributes"`
}

type DeleteByCategoryResponse struct {
	Removed bool `json:"removed"`
}

func mapModelToWire(kind model.AttributeKind, a *model.Attribute) *Attribute {
	out := &Attribute{
		ID:             a.ID,
		Kind:           string(kind),
		CategoryNodeID: a.CategoryNodeID,
		NameEn:         a.NameEn,
		NameFr:         a.NameFr,
		AttributeType:  a.AttributeType,
	}
	if a.SortOrder != nil {
		s := int32(*a.SortOrder)
		out.SortOrder = &s
	}
	return out
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
