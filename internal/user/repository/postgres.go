package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const columns = "id, email, password_hash, first_name, last_name, role, company_id, created_at, updated_at"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	u.Email = normalizeEmail(u.Email)

	// Checked up front so both drivers report the same error kind.
	if _, err := r.FindByEmail(ctx, u.Email); err == nil {
		return emailTaken(u.Email)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        INSERT INTO users (`+columns+`)
        VALUES (:id, :email, :password_hash, :first_name, :last_name, :role, :company_id, :created_at, :updated_at)
    `, u)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", normalizeEmail(email))
}

func (r *PGRepository) findOne(ctx context.Context, where string, arg string) (*model.User, error) {
	q := database.Conn(ctx, r.DB)
	var u model.User
	if err := q.GetContext(ctx, &u, q.Rebind(`SELECT `+columns+` FROM users WHERE `+where), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user.not_found", nil, "user not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepository) Update(ctx context.Context, u *model.User) error {
	u.Email = normalizeEmail(u.Email)

	if other, err := r.FindByEmail(ctx, u.Email); err == nil && other.ID != u.ID {
		return emailTaken(u.Email)
	} else if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        UPDATE users
        SET email = :email,
            password_hash = :password_hash,
            first_name = :first_name,
            last_name = :last_name,
            role = :role,
            company_id = :company_id,
            updated_at = :updated_at
        WHERE id = :id
    `, u)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func emailTaken(email string) error {
	return apperror.Conflict("user.email_taken",
		map[string]interface{}{"Email": email}, "email %s is already registered", email)
}

func requireAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("user.not_found", nil, "user not found")
	}
	return nil
}
