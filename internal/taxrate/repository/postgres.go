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

const columns = "id, region_code, rate, created_at, updated_at"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Region codes are stored upper-case ("ON", "QC").
func normalizeRegion(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *PGRepository) Create(ctx context.Context, rate *model.TaxRate) error {
	rate.RegionCode = normalizeRegion(rate.RegionCode)
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        INSERT INTO tax_rates (`+columns+`)
        VALUES (:id, :region_code, :rate, :created_at, :updated_at)
    `, rate)
	return err
}

func (r *PGRepository) FindByRegion(ctx context.Context, regionCode string) (*model.TaxRate, error) {
	region := normalizeRegion(regionCode)
	q := database.Conn(ctx, r.DB)
	var rate model.TaxRate
	if err := q.GetContext(ctx, &rate, q.Rebind(`SELECT `+columns+` FROM tax_rates WHERE region_code = ?`), region); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("tax_rate.not_found",
				map[string]interface{}{"Region": region}, "no tax rate for region %s", region)
		}
		return nil, err
	}
	return &rate, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.TaxRate, error) {
	q := database.Conn(ctx, r.DB)
	rates := []model.TaxRate{}
	if err := q.SelectContext(ctx, &rates, `SELECT `+columns+` FROM tax_rates ORDER BY region_code`); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *PGRepository) Update(ctx context.Context, rate *model.TaxRate) error {
	rate.RegionCode = normalizeRegion(rate.RegionCode)
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, `
        UPDATE tax_rates
        SET region_code = :region_code,
            rate = :rate,
            updated_at = :updated_at
        WHERE id = :id
    `, rate)
	if err != nil {
		return err
	}
	return requireAffected(res, rate.RegionCode)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM tax_rates WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, ref string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("tax_rate.not_found",
			map[string]interface{}{"Region": ref}, "tax rate %s not found", ref)
	}
	return nil
}
