package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	noderepo "github.com/fekuna/omnipos-catalog-service/internal/node/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/testutil"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T, db *sqlx.DB) attribute.UseCase {
	t.Helper()
	owners, err := noderepo.NewPGRepository(db, model.TreeCategory)
	require.NoError(t, err)
	return NewAttributeUseCase(repository.NewPGRepository(db), owners, logger.NewNop())
}

func TestAttributeLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newUseCase(t, db)
	ctx := context.Background()

	dept := testutil.InsertNode(t, db, "category_nodes", "Department", nil, "Dept")

	a, err := uc.AddAttribute(ctx, &dto.AttributeInput{
		Kind:           model.AttributeKindMandatory,
		CategoryNodeID: dept,
		NameEn:         "Size",
		NameFr:         "Taille",
		AttributeType:  "enum",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	updated, err := uc.UpdateAttribute(ctx, &dto.UpdateAttributeInput{
		ID:            a.ID,
		Kind:          model.AttributeKindMandatory,
		NameEn:        "Shoe size",
		NameFr:        "Pointure",
		AttributeType: "int",
		SortOrder:     testutil.Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pointure", updated.NameFr)

	list, err := uc.ListAttributes(ctx, model.AttributeKindMandatory, dept)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "int", list[0].AttributeType)

	removed, err := uc.DeleteAttributesByCategoryNodeID(ctx, model.AttributeKindMandatory, dept)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uc.DeleteAttributesByCategoryNodeID(ctx, model.AttributeKindMandatory, dept)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAddAttributeValidation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newUseCase(t, db)
	ctx := context.Background()

	_, err := uc.AddAttribute(ctx, &dto.AttributeInput{
		Kind:           model.AttributeKindFeature,
		CategoryNodeID: "n",
		NameEn:         "Only English",
		AttributeType:  "string",
	})
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))

	_, err = uc.AddAttribute(ctx, &dto.AttributeInput{Kind: "nope"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestRemoveMissingAttribute(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newUseCase(t, db)

	err := uc.RemoveAttribute(context.Background(), model.AttributeKindFeature, "missing")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestAddAttributeRequiresOwner(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newUseCase(t, db)
	ctx := context.Background()

	_, err := uc.AddAttribute(ctx, &dto.AttributeInput{
		Kind:           model.AttributeKindMandatoryExtra,
		CategoryNodeID: "missing",
		NameEn:         "Colour",
		NameFr:         "Couleur",
		AttributeType:  "enum",
	})
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "attribute.owner_missing", appErr.MessageID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// Product tree ids are not category owners.
	product := testutil.InsertNode(t, db, "product_nodes", "Department", nil, "Toys")
	_, err = uc.AddAttribute(ctx, &dto.AttributeInput{
		Kind:           model.AttributeKindMandatoryExtra,
		CategoryNodeID: product,
		NameEn:         "Colour",
		NameFr:         "Couleur",
		AttributeType:  "enum",
	})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
