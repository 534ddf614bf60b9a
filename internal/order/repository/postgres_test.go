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
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	userID, companyID, variantID string
}

func setup(t *testing.T, db *sqlx.DB) fixture {
	t.Helper()
	userID := testutil.InsertUser(t, db, "buyer@example.com")
	companyID := testutil.InsertCompany(t, db, userID, "Acme")
	_, variantID := testutil.InsertItemWithVariant(t, db, companyID, nil, 5)
	return fixture{userID: userID, companyID: companyID, variantID: variantID}
}

func newOrder(f fixture, created time.Time, lines ...model.OrderItem) *model.Order {
	return &model.Order{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: created, UpdatedAt: created},
		UserID:    f.userID,
		CompanyID: f.companyID,
		Status:    model.OrderStatusPending,
		Subtotal:  20,
		TaxTotal:  2.6,
		Total:     22.6,
		Items:     lines,
	}
}

func TestCreateWithItems(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()
	f := setup(t, db)

	o := newOrder(f, time.Now().UTC(), model.OrderItem{ItemVariantID: f.variantID, Quantity: 2, UnitPrice: 10})
	require.NoError(t, repo.CreateWithItems(ctx, o))
	assert.NotEmpty(t, o.Items[0].ID)

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 22.6, found.Total, 0.001)
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].Quantity)

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, model.OrderStatusPaid))
	found, err = repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, found.Status)

	assert.True(t, errors.Is(repo.UpdateStatus(ctx, "missing", model.OrderStatusPaid), apperror.ErrNotFound))
	_, err = repo.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCreateWithItemsRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()
	f := setup(t, db)

	empty := newOrder(f, time.Now().UTC())
	assert.True(t, errors.Is(repo.CreateWithItems(ctx, empty), apperror.ErrInvalidArgument))

	// The second line violates quantity > 0, so the order row must not survive.
	bad := newOrder(f, time.Now().UTC(),
		model.OrderItem{ItemVariantID: f.variantID, Quantity: 1, UnitPrice: 10},
		model.OrderItem{ItemVariantID: f.variantID, Quantity: 0, UnitPrice: 10},
	)
	require.Error(t, repo.CreateWithItems(ctx, bad))

	_, err := repo.FindByID(ctx, bad.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	items, err := repo.FindItems(ctx, bad.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFindByUserAndCompany(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPGRepository(db)
	ctx := context.Background()
	f := setup(t, db)

	now := time.Now().UTC()
	older := newOrder(f, now.Add(-time.Hour), model.OrderItem{ItemVariantID: f.variantID, Quantity: 1, UnitPrice: 10})
	newer := newOrder(f, now, model.OrderItem{ItemVariantID: f.variantID, Quantity: 1, UnitPrice: 10})
	require.NoError(t, repo.CreateWithItems(ctx, older))
	require.NoError(t, repo.CreateWithItems(ctx, newer))

	byUser, err := repo.FindByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, newer.ID, byUser[0].ID)

	byCompany, err := repo.FindByCompany(ctx, f.companyID)
	require.NoError(t, err)
	assert.Len(t, byCompany, 2)

	none, err := repo.FindByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
