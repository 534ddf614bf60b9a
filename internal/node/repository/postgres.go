package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const (
	columns = "id, name_en, name_fr, node_type, parent_id, is_active, sort_order, created_at, updated_at"
	orderBy = "(sort_order IS NULL) ASC, sort_order ASC, name_en ASC"
)

var tables = map[model.Tree]string{
	model.TreeCategory: "category_nodes",
	model.TreeProduct:  "product_nodes",
}

// PGRepository stores one node tree. The category and product hierarchies share
// the implementation and differ only by table.
type PGRepository struct {
	DB    *sqlx.DB
	tree  model.Tree
	table string
}

func NewPGRepository(db *sqlx.DB, tree model.Tree) (*PGRepository, error) {
	table, ok := tables[tree]
	if !ok {
		return nil, fmt.Errorf("unknown node tree %q", tree)
	}
	return &PGRepository{DB: db, tree: tree, table: table}, nil
}

func (r *PGRepository) Tree() model.Tree {
	return r.tree
}

func (r *PGRepository) Create(ctx context.Context, n *model.Node) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (%s)
        VALUES (:id, :name_en, :name_fr, :node_type, :parent_id, :is_active, :sort_order, :created_at, :updated_at)
    `, r.table, columns)
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, n)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Node, error) {
	q := database.Conn(ctx, r.DB)
	var n model.Node
	query := q.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, columns, r.table))
	if err := q.GetContext(ctx, &n, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return &n, nil
}

func (r *PGRepository) Update(ctx context.Context, n *model.Node) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET name_en = :name_en,
            name_fr = :name_fr,
            parent_id = :parent_id,
            is_active = :is_active,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
    `, r.table)
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, n)
	if err != nil {
		return err
	}
	return requireAffected(res, n.ID)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table)), id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (r *PGRepository) FindChildren(ctx context.Context, parentID string) ([]model.Node, error) {
	return r.selectWhere(ctx, "parent_id = ?", parentID)
}

func (r *PGRepository) FindRoots(ctx context.Context) ([]model.Node, error) {
	return r.selectWhere(ctx, "parent_id IS NULL")
}

func (r *PGRepository) FindByType(ctx context.Context, nodeType model.NodeType) ([]model.Node, error) {
	return r.selectWhere(ctx, "node_type = ?", string(nodeType))
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Node, error) {
	return r.selectWhere(ctx, "1 = 1")
}

// SearchByName does a case-insensitive substring match on both language names.
// It backs search when no index is configured.
func (r *PGRepository) SearchByName(ctx context.Context, term string, limit int) ([]model.Node, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(term))) + "%"

	q := database.Conn(ctx, r.DB)
	nodes := []model.Node{}
	query := q.Rebind(fmt.Sprintf(`
        SELECT %s FROM %s
        WHERE LOWER(name_en) LIKE ? ESCAPE '\' OR LOWER(name_fr) LIKE ? ESCAPE '\'
        ORDER BY %s
        LIMIT ?
    `, columns, r.table, orderBy))
	if err := q.SelectContext(ctx, &nodes, query, pattern, pattern, limit); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (r *PGRepository) CountChildren(ctx context.Context, id string) (int, error) {
	q := database.Conn(ctx, r.DB)
	var count int
	query := q.Rebind(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE parent_id = ?`, r.table))
	if err := q.GetContext(ctx, &count, query, id); err != nil {
		return 0, err
	}
	return count, nil
}

// IsAncestorOrSelf walks up from candidateID and reports whether nodeID is on the
// path. UNION (not UNION ALL) stops the walk if the stored data already loops.
func (r *PGRepository) IsAncestorOrSelf(ctx context.Context, candidateID, nodeID string) (bool, error) {
	q := database.Conn(ctx, r.DB)
	query := q.Rebind(fmt.Sprintf(`
        WITH RECURSIVE ancestors (id, parent_id) AS (
            SELECT id, parent_id FROM %[1]s WHERE id = ?
            UNION
            SELECT n.id, n.parent_id FROM %[1]s n
            JOIN ancestors a ON n.id = a.parent_id
        )
        SELECT COUNT(*) FROM ancestors WHERE id = ?
    `, r.table))

	var count int
	if err := q.GetContext(ctx, &count, query, candidateID, nodeID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGRepository) selectWhere(ctx context.Context, where string, args ...interface{}) ([]model.Node, error) {
	q := database.Conn(ctx, r.DB)
	nodes := []model.Node{}
	query := q.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s`, columns, r.table, where, orderBy))
	if err := q.SelectContext(ctx, &nodes, query, args...); err != nil {
		return nil, err
	}
	return nodes, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func notFound(id string) error {
	return apperror.NotFound("node.not_found", map[string]interface{}{"ID": id}, "node %s not found", id)
}

func requireAffected(res sql.Result, id string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound(id)
	}
	return nil
}
