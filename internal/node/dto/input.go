package dto

import "github.com/fekuna/omnipos-catalog-service/internal/model"

type AddNodeInput struct {
	ID        string // Optional; generated when empty. Batch entries use it to reference earlier parents.
	NameEn    string
	NameFr    string
	NodeType  model.NodeType
	ParentID  *string
	IsActive  *bool // Defaults to true
	SortOrder *int
}

type UpdateNodeInput struct {
	ID        string
	NameEn    string
	NameFr    string
	NodeType  model.NodeType // Empty means unchanged; any other value must match the stored type
	ParentID  *string
	IsActive  bool
	SortOrder *int
}

type AttributeInput struct {
	Kind          model.AttributeKind
	NameEn        string
	NameFr        string
	AttributeType string
	SortOrder     *int
}

type NodeWithAttributesInput struct {
	Node       AddNodeInput
	Attributes []AttributeInput
}
