package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const (
	paymentColumns = "id, order_id, payment_method_id, amount, status, provider_ref, created_at"
	methodColumns  = "id, user_id, brand, last4, exp_month, exp_year, is_default, created_at"
)

type PGRepository struct {
	DB  *sqlx.DB
	txm *database.TxManager
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, txm: database.NewTxManager(db)}
}

func (r *PGRepository) CreatePayment(ctx context.Context, p *model.Payment) error {
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        INSERT INTO payments (`+paymentColumns+`)
        VALUES (:id, :order_id, :payment_method_id, :amount, :status, :provider_ref, :created_at)
    `, p)
	return err
}

func (r *PGRepository) FindPaymentsByOrder(ctx context.Context, orderID string) ([]model.Payment, error) {
	q := database.Conn(ctx, r.DB)
	payments := []model.Payment{}
	query := q.Rebind(`SELECT ` + paymentColumns + ` FROM payments WHERE order_id = ? ORDER BY created_at, id`)
	if err := q.SelectContext(ctx, &payments, query, orderID); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PGRepository) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, providerRef string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`UPDATE payments SET status = ?, provider_ref = ? WHERE id = ?`),
		string(status), providerRef, id)
	if err != nil {
		return err
	}
	return affectedOr(res, apperror.NotFound("payment.not_found",
		map[string]interface{}{"ID": id}, "payment %s not found", id))
}

func (r *PGRepository) CreateMethod(ctx context.Context, m *model.PaymentMethod) error {
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        INSERT INTO payment_methods (`+methodColumns+`)
        VALUES (:id, :user_id, :brand, :last4, :exp_month, :exp_year, :is_default, :created_at)
    `, m)
	return err
}

// FindMethodsByUser lists the default method first.
func (r *PGRepository) FindMethodsByUser(ctx context.Context, userID string) ([]model.PaymentMethod, error) {
	q := database.Conn(ctx, r.DB)
	methods := []model.PaymentMethod{}
	query := q.Rebind(`SELECT ` + methodColumns + ` FROM payment_methods WHERE user_id = ? ORDER BY is_default DESC, created_at, id`)
	if err := q.SelectContext(ctx, &methods, query, userID); err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PGRepository) SetDefaultMethod(ctx context.Context, userID, methodID string) error {
	return r.txm.WithTx(ctx, func(ctx context.Context) error {
		q := database.Conn(ctx, r.DB)
		if _, err := q.ExecContext(ctx, q.Rebind(`UPDATE payment_methods SET is_default = FALSE WHERE user_id = ?`), userID); err != nil {
			return err
		}
		res, err := q.ExecContext(ctx, q.Rebind(`UPDATE payment_methods SET is_default = TRUE WHERE id = ? AND user_id = ?`), methodID, userID)
		if err != nil {
			return err
		}
		return affectedOr(res, apperror.NotFound("payment_method.not_found",
			map[string]interface{}{"ID": methodID}, "payment method %s not found", methodID))
	})
}

func (r *PGRepository) DeleteMethod(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM payment_methods WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return affectedOr(res, apperror.NotFound("payment_method.not_found",
		map[string]interface{}{"ID": id}, "payment method %s not found", id))
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
