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

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Session) error {
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        INSERT INTO sessions (id, user_id, expires_at, created_at)
        VALUES (:id, :user_id, :expires_at, :created_at)
    `, s)
	return err
}

func (r *PGRepository) FindValid(ctx context.Context, id string, now time.Time) (*model.Session, error) {
	q := database.Conn(ctx, r.DB)
	var s model.Session
	query := q.Rebind(`SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ? AND expires_at > ?`)
	if err := q.GetContext(ctx, &s, query, id, now.UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("session.not_found", nil, "session not found or expired")
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	_, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM sessions WHERE id = ?`), id)
	return err
}

func (r *PGRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM sessions WHERE expires_at <= ?`), now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
