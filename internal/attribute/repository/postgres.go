package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

var tables = map[model.AttributeKind]string{
	model.AttributeKindMandatory:      "category_mandatory_attributes",
	model.AttributeKindMandatoryExtra: "category_mandatory_extra_attributes",
	model.AttributeKindFeature:        "category_mandatory_features",
}

const columns = "id, category_node_id, name_en, name_fr, attribute_type, sort_order"

type PGRepository struct {
	DB  *sqlx.DB
	txm *database.TxManager
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, txm: database.NewTxManager(db)}
}

func tableFor(kind model.AttributeKind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", attribute.ValidateKind(kind)
	}
	return table, nil
}

func (r *PGRepository) Create(ctx context.Context, kind model.AttributeKind, a *model.Attribute) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
        INSERT INTO %s (%s)
        VALUES (:id, :category_node_id, :name_en, :name_fr, :attribute_type, :sort_order)
    `, table, columns)
	_, err = database.Conn(ctx, r.DB).NamedExecContext(ctx, query, a)
	return err
}

// CreateBatch inserts every attribute or none. It joins the caller's transaction
// when there is one.
func (r *PGRepository) CreateBatch(ctx context.Context, kind model.AttributeKind, attrs []model.Attribute) error {
	if len(attrs) == 0 {
		return nil
	}
	return r.txm.WithTx(ctx, func(ctx context.Context) error {
		for i := range attrs {
			if err := r.Create(ctx, kind, &attrs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PGRepository) FindByID(ctx context.Context, kind model.AttributeKind, id string) (*model.Attribute, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	q := database.Conn(ctx, r.DB)
	var a model.Attribute
	query := q.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, columns, table))
	if err := q.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("attribute.not_found",
				map[string]interface{}{"ID": id}, "attribute %s not found", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGRepository) Update(ctx context.Context, kind model.AttributeKind, a *model.Attribute) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
        UPDATE %s
        SET name_en = :name_en,
            name_fr = :name_fr,
            attribute_type = :attribute_type,
            sort_order = :sort_order
        WHERE id = :id
    `, table)
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, a)
	if err != nil {
		return err
	}
	return requireAffected(res, a.ID)
}

func (r *PGRepository) Delete(ctx context.Context, kind model.AttributeKind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)), id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (r *PGRepository) GetByOwner(ctx context.Context, kind model.AttributeKind, categoryNodeID string) ([]model.Attribute, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	q := database.Conn(ctx, r.DB)
	attrs := []model.Attribute{}
	query := q.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE category_node_id = ? ORDER BY %s`,
		columns, table, attribute.OrderBy))
	if err := q.SelectContext(ctx, &attrs, query, categoryNodeID); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (r *PGRepository) DeleteByOwner(ctx context.Context, kind model.AttributeKind, categoryNodeID string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE category_node_id = ?`, table)), categoryNodeID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func requireAffected(res sql.Result, id string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("attribute.not_found",
			map[string]interface{}{"ID": id}, "attribute %s not found", id)
	}
	return nil
}
