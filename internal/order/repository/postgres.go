package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const orderColumns = "id, user_id, company_id, status, subtotal, tax_total, total, shipping_address_id, created_at, updated_at"

type PGRepository struct {
	DB  *sqlx.DB
	txm *database.TxManager
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, txm: database.NewTxManager(db)}
}

func (r *PGRepository) CreateWithItems(ctx context.Context, o *model.Order) error {
	if len(o.Items) == 0 {
		return apperror.InvalidArgument("order.empty", nil, "order has no items")
	}

	return r.txm.WithTx(ctx, func(ctx context.Context) error {
		q := database.Conn(ctx, r.DB)
		_, err := q.NamedExecContext(ctx, `
            INSERT INTO orders (`+orderColumns+`)
            VALUES (:id, :user_id, :company_id, :status, :subtotal, :tax_total, :total, :shipping_address_id, :created_at, :updated_at)
        `, o)
		if err != nil {
			return err
		}

		for i := range o.Items {
			line := &o.Items[i]
			if line.ID == "" {
				line.ID = uuid.New().String()
			}
			line.OrderID = o.ID
			_, err := q.NamedExecContext(ctx, `
                INSERT INTO order_items (id, order_id, item_variant_id, quantity, unit_price)
                VALUES (:id, :order_id, :item_variant_id, :quantity, :unit_price)
            `, line)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	q := database.Conn(ctx, r.DB)
	var o model.Order
	if err := q.GetContext(ctx, &o, q.Rebind(`SELECT `+orderColumns+` FROM orders WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("order.not_found", map[string]interface{}{"ID": id}, "order %s not found", id)
		}
		return nil, err
	}

	items, err := r.FindItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PGRepository) FindItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	q := database.Conn(ctx, r.DB)
	items := []model.OrderItem{}
	query := q.Rebind(`SELECT id, order_id, item_variant_id, quantity, unit_price FROM order_items WHERE order_id = ? ORDER BY id`)
	if err := q.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) FindByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return r.findWhere(ctx, "user_id = ?", userID)
}

func (r *PGRepository) FindByCompany(ctx context.Context, companyID string) ([]model.Order, error) {
	return r.findWhere(ctx, "company_id = ?", companyID)
}

func (r *PGRepository) findWhere(ctx context.Context, where string, arg interface{}) ([]model.Order, error) {
	q := database.Conn(ctx, r.DB)
	orders := []model.Order{}
	query := q.Rebind(`SELECT ` + orderColumns + ` FROM orders WHERE ` + where + ` ORDER BY created_at DESC, id`)
	if err := q.SelectContext(ctx, &orders, query, arg); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`),
		string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("order.not_found", map[string]interface{}{"ID": id}, "order %s not found", id)
	}
	return nil
}
