package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(companyID string, categoryNodeID *string, name string) *model.Item {
	now := time.Now().UTC()
	return &model.Item{
		BaseModel:      model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CompanyID:      companyID,
		CategoryNodeID: categoryNodeID,
		NameEn:         name,
		NameFr:         name + " fr",
	}
}

func TestItemCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	company := uuid.New().String()
	it := newItem(company, nil, "Kettle")
	require.NoError(t, repo.Create(ctx, it))

	found, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kettle", found.NameEn)
	assert.False(t, found.IsDeleted)

	found.DescriptionEn = "Electric"
	found.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, found))

	list, err := repo.FindByCompany(ctx, company, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Electric", list[0].DescriptionEn)

	require.NoError(t, repo.SoftDelete(ctx, it.ID))

	list, err = repo.FindByCompany(ctx, company, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = repo.FindByCompany(ctx, company, true)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCountActiveByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	dept := testutil.InsertNode(t, db, "category_nodes", "Department", nil, "Dept")
	cat := testutil.InsertNode(t, db, "category_nodes", "Category", &dept, "Cat")

	a := newItem("c1", &cat, "A")
	b := newItem("c1", &cat, "B")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	count, err := repo.CountActiveByCategory(ctx, cat)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.SoftDelete(ctx, a.ID))

	count, err = repo.CountActiveByCategory(ctx, cat)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountActiveByProductNode(ctx, cat)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAdjustStock(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	_, variantID := testutil.InsertItemWithVariant(t, db, "c1", nil, 5)

	v, err := repo.AdjustStock(ctx, variantID, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, v.StockQuantity)

	_, err = repo.AdjustStock(ctx, variantID, -3)
	assert.True(t, errors.Is(err, apperror.ErrInvalidOperation))

	v, err = repo.FindVariantByID(ctx, variantID)
	require.NoError(t, err)
	assert.Equal(t, 2, v.StockQuantity)

	_, err = repo.AdjustStock(ctx, "missing", 1)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestVariants(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()

	it := newItem("c1", nil, "Shirt")
	require.NoError(t, repo.Create(ctx, it))

	now := time.Now().UTC()
	small := &model.ItemVariant{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ItemID:    it.ID, SKU: "SHIRT-S", Price: 19.99, StockQuantity: 4,
	}
	large := &model.ItemVariant{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ItemID:    it.ID, SKU: "SHIRT-L", Price: 21.99, StockQuantity: 1,
	}
	require.NoError(t, repo.CreateVariant(ctx, small))
	require.NoError(t, repo.CreateVariant(ctx, large))

	variants, err := repo.FindVariantsByItem(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "SHIRT-L", variants[0].SKU)

	large.Price = 24.5
	require.NoError(t, repo.UpdateVariant(ctx, large))
	got, err := repo.FindVariantByID(ctx, large.ID)
	require.NoError(t, err)
	assert.InDelta(t, 24.5, got.Price, 0.001)

	require.NoError(t, repo.SoftDeleteVariant(ctx, small.ID))
	variants, err = repo.FindVariantsByItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Len(t, variants, 1)
}
