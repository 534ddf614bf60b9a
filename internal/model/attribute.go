package model

// AttributeKind selects one of the three category side tables.
type AttributeKind string

const (
	AttributeKindMandatory      AttributeKind = "mandatory"
	AttributeKindMandatoryExtra AttributeKind = "mandatory_extra"
	AttributeKindFeature        AttributeKind = "feature"
)

func (k AttributeKind) Valid() bool {
	switch k {
	case AttributeKindMandatory, AttributeKindMandatoryExtra, AttributeKindFeature:
		return true
	}
	return false
}

// Attribute is a category-scoped field definition. Mandatory attributes, extra
// attributes and features share this shape.
type Attribute struct {
	ID             string `db:"id" json:"id"`
	CategoryNodeID string `db:"category_node_id" json:"category_node_id"`
	NameEn         string `db:"name_en" json:"name_en"`
	NameFr         string `db:"name_fr" json:"name_fr"`
	AttributeType  string `db:"attribute_type" json:"attribute_type"`
	SortOrder      *int   `db:"sort_order" json:"sort_order"`
}
