package item

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ramadhanif/bakery-inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ItemRepository interface {
	Create(ctx context.Context, item *model.ItemEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error)
	GetByCode(ctx context.Context, code string) (*model.ItemEntity, error)
	GetByCodeExcluding(ctx context.Context, code string, excludeID uint64) (*model.ItemEntity, error)
	List(ctx context.Context, filter *model.ItemFilter) ([]model.ItemEntity, int64, error)
	Update(ctx context.Context, id uint64, req *model.UpdateItemRequest) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	ResetAllStocks(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemEntity, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

const itemColumns = "id, code, name, category, description, price, stock, is_active, created_at, updated_at"

func (r *SQL) Create(ctx context.Context, item *model.ItemEntity) (uint64, error) {
	q := "INSERT INTO item (code, name, category, description, price, stock, is_active) VALUES (?, ?, ?, ?, ?, ?, ?)"
	res, err := r.conn.ExecContext(ctx, q, item.Code, item.Name, item.Category, item.Description, item.Price, item.Stock, item.IsActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	var it model.ItemEntity
	err := r.conn.GetContext(ctx, &it, "SELECT "+itemColumns+" FROM item WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *SQL) GetByCode(ctx context.Context, code string) (*model.ItemEntity, error) {
	var it model.ItemEntity
	err := r.conn.GetContext(ctx, &it, "SELECT "+itemColumns+" FROM item WHERE code = ?", code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *SQL) GetByCodeExcluding(ctx context.Context, code string, excludeID uint64) (*model.ItemEntity, error) {
	var it model.ItemEntity
	err := r.conn.GetContext(ctx, &it, "SELECT "+itemColumns+" FROM item WHERE code = ? AND id != ?", code, excludeID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *SQL) List(ctx context.Context, filter *model.ItemFilter) ([]model.ItemEntity, int64, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if filter.Search != "" {
		where = append(where, "(name LIKE ? OR code LIKE ? OR description LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Active != nil {
		where = append(where, "is_active = ?")
		args = append(args, *filter.Active)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM item"+clause, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	q := "SELECT " + itemColumns + " FROM item" + clause + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.conn.QueryxContext(ctx, q, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ItemEntity, 0)
	for rows.Next() {
		var it model.ItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, total, nil
}

func (r *SQL) Update(ctx context.Context, id uint64, req *model.UpdateItemRequest) (int64, error) {
	set := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)

	if req.Code != nil {
		set = append(set, "code = ?")
		args = append(args, *req.Code)
	}
	if req.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Category != nil {
		set = append(set, "category = ?")
		args = append(args, *req.Category)
	}
	if req.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Price != nil {
		set = append(set, "price = ?")
		args = append(args, *req.Price)
	}
	if req.IsActive != nil {
		set = append(set, "is_active = ?")
		args = append(args, *req.IsActive)
	}
	if len(set) == 0 {
		return 0, nil
	}

	q := "UPDATE item SET " + strings.Join(set, ", ") + ", updated_at = NOW() WHERE id = ?"
	res, err := r.conn.ExecContext(ctx, q, append(args, id)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM item WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT DISTINCT category FROM item ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

func (r *SQL) ResetAllStocks(ctx context.Context) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "UPDATE item SET stock = 0, updated_at = NOW() WHERE stock != 0")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM item WHERE is_active = true"); err != nil {
		return 0, err
	}
	return n, nil
}

// GetForUpdateTx locks the item row for the duration of the transaction. The
// central stock counter is a contention point shared by every transfer of the
// item, so transfers serialize on this lock.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ItemEntity, error) {
	var it model.ItemEntity
	err := tx.GetContext(ctx, &it, "SELECT "+itemColumns+" FROM item WHERE id = ? FOR UPDATE", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE item SET stock = stock - ?, updated_at = NOW() WHERE id = ?", quantity, id)
	return err
}
