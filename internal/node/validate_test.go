package node

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateParentRule(t *testing.T) {
	parent := "p1"
	empty := ""

	tests := []struct {
		name     string
		nodeType model.NodeType
		parentID *string
		wantErr  error
	}{
		{"department root", model.NodeTypeDepartment, nil, nil},
		{"department empty parent", model.NodeTypeDepartment, &empty, nil},
		{"department with parent", model.NodeTypeDepartment, &parent, apperror.ErrInvalidOperation},
		{"navigation with parent", model.NodeTypeNavigation, &parent, nil},
		{"navigation without parent", model.NodeTypeNavigation, nil, apperror.ErrInvalidOperation},
		{"category with parent", model.NodeTypeCategory, &parent, nil},
		{"category empty parent", model.NodeTypeCategory, &empty, apperror.ErrInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParentRule(tt.nodeType, tt.parentID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateTypeAndNames(t *testing.T) {
	assert.NoError(t, ValidateType(model.NodeTypeCategory))
	assert.True(t, errors.Is(ValidateType("Aisle"), apperror.ErrInvalidArgument))

	assert.NoError(t, ValidateNames("Shoes", "Chaussures"))
	assert.True(t, errors.Is(ValidateNames(" ", "Chaussures"), apperror.ErrInvalidArgument))
	assert.True(t, errors.Is(ValidateNames("Shoes", ""), apperror.ErrInvalidArgument))
}
