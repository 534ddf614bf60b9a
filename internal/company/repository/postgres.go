package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	companyColumns = "id, owner_user_id, name, description, address_id, created_at, updated_at"
	addressColumns = "id, line1, line2, city, province, postal_code, country"
)

type PGRepository struct {
	DB  *sqlx.DB
	txm *database.TxManager
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, txm: database.NewTxManager(db)}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Company) error {
	return r.txm.WithTx(ctx, func(ctx context.Context) error {
		q := database.Conn(ctx, r.DB)

		if c.Address != nil {
			if c.Address.ID == "" {
				c.Address.ID = uuid.New().String()
			}
			_, err := q.NamedExecContext(ctx, `
                INSERT INTO addresses (`+addressColumns+`)
                VALUES (:id, :line1, :line2, :city, :province, :postal_code, :country)
            `, c.Address)
			if err != nil {
				return err
			}
			c.AddressID = &c.Address.ID
		}

		_, err := q.NamedExecContext(ctx, `
            INSERT INTO companies (`+companyColumns+`)
            VALUES (:id, :owner_user_id, :name, :description, :address_id, :created_at, :updated_at)
        `, c)
		return err
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Company, error) {
	q := database.Conn(ctx, r.DB)
	var c model.Company
	if err := q.GetContext(ctx, &c, q.Rebind(`SELECT `+companyColumns+` FROM companies WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}

	if c.AddressID != nil {
		addr, err := r.FindAddress(ctx, *c.AddressID)
		if err != nil {
			return nil, err
		}
		c.Address = addr
	}
	return &c, nil
}

func (r *PGRepository) FindByOwner(ctx context.Context, ownerUserID string) ([]model.Company, error) {
	q := database.Conn(ctx, r.DB)
	companies := []model.Company{}
	query := q.Rebind(`SELECT ` + companyColumns + ` FROM companies WHERE owner_user_id = ? ORDER BY name, id`)
	if err := q.SelectContext(ctx, &companies, query, ownerUserID); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Company) error {
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        UPDATE companies
        SET name = :name,
            description = :description,
            address_id = :address_id,
            updated_at = :updated_at
        WHERE id = :id
    `, c)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound(c.ID)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM companies WHERE id = ?`), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound(id)
	}
	return nil
}

func (r *PGRepository) FindAddress(ctx context.Context, id string) (*model.Address, error) {
	q := database.Conn(ctx, r.DB)
	var a model.Address
	if err := q.GetContext(ctx, &a, q.Rebind(`SELECT `+addressColumns+` FROM addresses WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("address.not_found", nil, "address %s not found", id)
		}
		return nil, err
	}
	return &a, nil
}

func notFound(id string) error {
	return apperror.NotFound("company.not_found", map[string]interface{}{"ID": id}, "company %s not found", id)
}
