package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const (
	itemColumns    = "id, company_id, category_node_id, product_node_id, name_en, name_fr, description_en, description_fr, is_deleted, created_at, updated_at"
	variantColumns = "id, item_id, sku, price, stock_quantity, is_deleted, created_at, updated_at"
)

type PGRepository struct {
	DB  *sqlx.DB
	txm *database.TxManager
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, txm: database.NewTxManager(db)}
}

func itemNotFound(id string) error {
	return apperror.NotFound("item.not_found", map[string]interface{}{"ID": id}, "item %s not found", id)
}

func variantNotFound(id string) error {
	return apperror.NotFound("variant.not_found", map[string]interface{}{"ID": id}, "item variant %s not found", id)
}

func (r *PGRepository) Create(ctx context.Context, it *model.Item) error {
	query := `
        INSERT INTO items (` + itemColumns + `)
        VALUES (:id, :company_id, :category_node_id, :product_node_id, :name_en, :name_fr,
                :description_en, :description_fr, :is_deleted, :created_at, :updated_at)
    `
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, it)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	q := database.Conn(ctx, r.DB)
	var it model.Item
	err := q.GetContext(ctx, &it, q.Rebind(`SELECT `+itemColumns+` FROM items WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemNotFound(id)
		}
		return nil, err
	}
	return &it, nil
}

func (r *PGRepository) FindByCompany(ctx context.Context, companyID string, includeDeleted bool) ([]model.Item, error) {
	q := database.Conn(ctx, r.DB)
	query := `SELECT ` + itemColumns + ` FROM items WHERE company_id = ?`
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += ` ORDER BY name_en ASC`

	items := []model.Item{}
	if err := q.SelectContext(ctx, &items, q.Rebind(query), companyID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) Update(ctx context.Context, it *model.Item) error {
	query := `
        UPDATE items
        SET category_node_id = :category_node_id,
            product_node_id = :product_node_id,
            name_en = :name_en,
            name_fr = :name_fr,
            description_en = :description_en,
            description_fr = :description_fr,
            updated_at = :updated_at
        WHERE id = :id AND company_id = :company_id
    `
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, it)
	if err != nil {
		return err
	}
	return affectedOr(res, itemNotFound(it.ID))
}

func (r *PGRepository) SoftDelete(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx,
		q.Rebind(`UPDATE items SET is_deleted = TRUE, updated_at = ? WHERE id = ?`),
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return affectedOr(res, itemNotFound(id))
}

func (r *PGRepository) CountActiveByCategory(ctx context.Context, categoryNodeID string) (int, error) {
	return r.countActive(ctx, "category_node_id", categoryNodeID)
}

func (r *PGRepository) CountActiveByProductNode(ctx context.Context, productNodeID string) (int, error) {
	return r.countActive(ctx, "product_node_id", productNodeID)
}

func (r *PGRepository) countActive(ctx context.Context, column, nodeID string) (int, error) {
	q := database.Conn(ctx, r.DB)
	var count int
	query := q.Rebind(`SELECT count(*) FROM items WHERE ` + column + ` = ? AND is_deleted = FALSE`)
	if err := q.GetContext(ctx, &count, query, nodeID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGRepository) CreateVariant(ctx context.Context, v *model.ItemVariant) error {
	query := `
        INSERT INTO item_variants (` + variantColumns + `)
        VALUES (:id, :item_id, :sku, :price, :stock_quantity, :is_deleted, :created_at, :updated_at)
    `
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) FindVariantByID(ctx context.Context, id string) (*model.ItemVariant, error) {
	q := database.Conn(ctx, r.DB)
	var v model.ItemVariant
	err := q.GetContext(ctx, &v, q.Rebind(`SELECT `+variantColumns+` FROM item_variants WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, variantNotFound(id)
		}
		return nil, err
	}
	return &v, nil
}

func (r *PGRepository) FindVariantsByItem(ctx context.Context, itemID string) ([]model.ItemVariant, error) {
	q := database.Conn(ctx, r.DB)
	variants := []model.ItemVariant{}
	query := q.Rebind(`SELECT ` + variantColumns + ` FROM item_variants WHERE item_id = ? AND is_deleted = FALSE ORDER BY sku ASC`)
	if err := q.SelectContext(ctx, &variants, query, itemID); err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *PGRepository) UpdateVariant(ctx context.Context, v *model.ItemVariant) error {
	query := `
        UPDATE item_variants
        SET sku = :sku,
            price = :price,
            stock_quantity = :stock_quantity,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, v)
	if err != nil {
		return err
	}
	return affectedOr(res, variantNotFound(v.ID))
}

func (r *PGRepository) SoftDeleteVariant(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx,
		q.Rebind(`UPDATE item_variants SET is_deleted = TRUE, updated_at = ? WHERE id = ?`),
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return affectedOr(res, variantNotFound(id))
}

func (r *PGRepository) AdjustStock(ctx context.Context, variantID string, delta int) (*model.ItemVariant, error) {
	var out *model.ItemVariant
	err := r.txm.WithTx(ctx, func(ctx context.Context) error {
		q := database.Conn(ctx, r.DB)
		res, err := q.ExecContext(ctx, q.Rebind(`
			UPDATE item_variants
			SET stock_quantity = stock_quantity + ?, updated_at = ?
			WHERE id = ? AND is_deleted = FALSE AND stock_quantity + ? >= 0
		`), delta, time.Now().UTC(), variantID, delta)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			// Either missing or the stock would go negative.
			if _, err := r.FindVariantByID(ctx, variantID); err != nil {
				return err
			}
			return apperror.InvalidOperation("variant.insufficient_stock",
				map[string]interface{}{"ID": variantID}, "insufficient stock for variant %s", variantID)
		}
		out, err = r.FindVariantByID(ctx, variantID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func affectedOr(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
