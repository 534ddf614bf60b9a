package model

// NodeType discriminates the three node variants sharing one table shape.
type NodeType string

const (
	NodeTypeDepartment NodeType = "Department"
	NodeTypeNavigation NodeType = "Navigation"
	NodeTypeCategory   NodeType = "Category"
)

func (t NodeType) Valid() bool {
	switch t {
	case NodeTypeDepartment, NodeTypeNavigation, NodeTypeCategory:
		return true
	}
	return false
}

// RequiresParent reports whether nodes of this type must hang under another node.
// Departments are roots; everything else needs a parent.
func (t NodeType) RequiresParent() bool {
	return t == NodeTypeNavigation || t == NodeTypeCategory
}

// Tree selects which hierarchy table a node lives in.
type Tree string

const (
	TreeCategory Tree = "category"
	TreeProduct  Tree = "product"
)

func (t Tree) Valid() bool {
	return t == TreeCategory || t == TreeProduct
}

type Node struct {
	BaseModel
	NameEn    string   `db:"name_en" json:"name_en"`
	NameFr    string   `db:"name_fr" json:"name_fr"`
	NodeType  NodeType `db:"node_type" json:"node_type"`
	ParentID  *string  `db:"parent_id" json:"parent_id"` // Nullable
	IsActive  bool     `db:"is_active" json:"is_active"`
	SortOrder *int     `db:"sort_order" json:"sort_order"` // Nullable, sorts last
}
