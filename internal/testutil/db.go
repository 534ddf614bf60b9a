// Package testutil holds fixtures shared by repository and use case tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewDB returns a migrated in-memory SQLite database closed at test cleanup.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}

// InsertNode writes a node row directly, bypassing validation, and returns its id.
func InsertNode(t *testing.T, db *sqlx.DB, table, nodeType string, parentID *string, nameEn string) string {
	t.Helper()

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Exec(db.Rebind(`INSERT INTO `+table+` (id, name_en, name_fr, node_type, parent_id, is_active, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, TRUE, NULL, ?, ?)`),
		id, nameEn, nameEn+" (fr)", nodeType, parentID, now, now)
	require.NoError(t, err)
	return id
}

// InsertUser writes a minimal user row and returns its id.
func InsertUser(t *testing.T, db *sqlx.DB, email string) string {
	t.Helper()

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Exec(db.Rebind(`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, 'x', 'customer', ?, ?)`), id, email, now, now)
	require.NoError(t, err)
	return id
}

// InsertCompany writes a company owned by ownerID and returns its id.
func InsertCompany(t *testing.T, db *sqlx.DB, ownerID, name string) string {
	t.Helper()

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Exec(db.Rebind(`INSERT INTO companies (id, owner_user_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`), id, ownerID, name, now, now)
	require.NoError(t, err)
	return id
}

// InsertItemWithVariant writes an item and one variant with the given stock and
// returns (itemID, variantID).
func InsertItemWithVariant(t *testing.T, db *sqlx.DB, companyID string, categoryNodeID *string, stock int) (string, string) {
	t.Helper()

	itemID := uuid.New().String()
	variantID := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Exec(db.Rebind(`INSERT INTO items (id, company_id, category_node_id, name_en, name_fr, is_deleted, created_at, updated_at)
		VALUES (?, ?, ?, 'Item', 'Article', FALSE, ?, ?)`), itemID, companyID, categoryNodeID, now, now)
	require.NoError(t, err)
	_, err = db.Exec(db.Rebind(`INSERT INTO item_variants (id, item_id, sku, price, stock_quantity, is_deleted, created_at, updated_at)
		VALUES (?, ?, ?, 10, ?, FALSE, ?, ?)`), variantID, itemID, "SKU-"+variantID[:8], stock, now, now)
	require.NoError(t, err)
	return itemID, variantID
}

func Ptr[T any](v T) *T {
	return &v
}
