package dto

import "github.com/fekuna/omnipos-catalog-service/internal/model"

type AttributeInput struct {
	Kind           model.AttributeKind
	CategoryNodeID string
	NameEn         string
	NameFr         string
	AttributeType  string
	SortOrder      *int
}

type UpdateAttributeInput struct {
	ID            string
	Kind          model.AttributeKind
	NameEn        string
	NameFr        string
	AttributeType string
	SortOrder     *int
}
