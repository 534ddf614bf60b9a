package node

import (
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

func ValidateType(nodeType model.NodeType) error {
	if !nodeType.Valid() {
		return apperror.InvalidArgument("node.invalid_type",
			map[string]interface{}{"Type": string(nodeType)}, "invalid node type %q", nodeType)
	}
	return nil
}

func ValidateNames(nameEn, nameFr string) error {
	if strings.TrimSpace(nameEn) == "" || strings.TrimSpace(nameFr) == "" {
		return apperror.InvalidArgument("node.name_required", nil, "node requires name_en and name_fr")
	}
	return nil
}

// ValidateParentRule checks parent presence against the node type. Departments are
// roots; navigation and category nodes hang under another node.
func ValidateParentRule(nodeType model.NodeType, parentID *string) error {
	hasParent := parentID != nil && *parentID != ""
	if nodeType == model.NodeTypeDepartment && hasParent {
		return apperror.InvalidOperation("node.department_has_parent", nil, "department nodes cannot have a parent")
	}
	if nodeType.RequiresParent() && !hasParent {
		return apperror.InvalidOperation("node.parent_required",
			map[string]interface{}{"Type": string(nodeType)}, "%s nodes require a parent", nodeType)
	}
	return nil
}

func ParentMissing(parentID string) error {
	return apperror.InvalidOperation("node.parent_missing",
		map[string]interface{}{"ParentID": parentID}, "parent node %s does not exist", parentID)
}

func CircularReference(parentID string) error {
	return apperror.InvalidOperation("node.circular_reference",
		map[string]interface{}{"ParentID": parentID}, "moving under %s would create a cycle", parentID)
}

func IDTaken(id string) error {
	return apperror.InvalidArgument("node.id_taken",
		map[string]interface{}{"ID": id}, "node id %s is already in use", id)
}
