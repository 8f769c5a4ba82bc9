package inventory

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/ramadhanif/bakery-inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type InventoryRepository interface {
	GetByBranch(ctx context.Context, branchID uint64, lowStockOnly bool) ([]model.InventoryRow, error)
	GetRow(ctx context.Context, itemID, branchID uint64) (*model.InventoryRow, error)
	ListAll(ctx context.Context, branchID uint64) ([]model.InventoryRow, error)
	GetEntryForUpdateTx(ctx context.Context, tx *sqlx.Tx, itemID, branchID uint64) (*model.InventoryEntry, error)
	InsertEntryTx(ctx context.Context, tx *sqlx.Tx, entry *model.InventoryEntry) (uint64, error)
	SetStockTx(ctx context.Context, tx *sqlx.Tx, entryID uint64, stock int64) error
	AddStockUpsertTx(ctx context.Context, tx *sqlx.Tx, itemID, branchID uint64, quantity, reorderPoint, maxStockLevel int64) error
	DecrementStockGuardedTx(ctx context.Context, tx *sqlx.Tx, itemID, branchID uint64, quantity int64) (bool, error)
	Summary(ctx context.Context) (*model.InventorySummary, error)
	CategoryBreakdown(ctx context.Context) ([]model.CategorySummary, error)
	BranchPerformance(ctx context.Context) ([]model.BranchPerformance, error)
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const rowSelect = `SELECT bi.id, bi.item_id, bi.branch_id, bi.current_stock, bi.reorder_point, bi.max_stock_level,
bi.last_restocked, bi.created_at, bi.updated_at,
i.code AS item_code, i.name AS item_name, i.category AS item_category, i.price AS item_price,
b.code AS branch_code, b.name AS branch_name
FROM branch_inventory bi
JOIN item i ON bi.item_id = i.id
JOIN branch b ON bi.branch_id = b.id`

func (r *SQL) GetByBranch(ctx context.Context, branchID uint64, lowStockOnly bool) ([]model.InventoryRow, error) {
	q := rowSelect + " WHERE bi.branch_id = ?"
	if lowStockOnly {
		q += " AND bi.current_stock <= bi.reorder_point"
	}
	q += " ORDER BY i.name"
	return r.queryRows(ctx, q, branchID)
}

func (r *SQL) GetRow(ctx context.Context, itemID, branchID uint64) (*model.InventoryRow, error) {
	var row model.InventoryRow
	err := r.conn.QueryRowxContext(ctx, rowSelect+" WHERE bi.item_id = ? AND bi.branch_id = ?", itemID, branchID).StructScan(&row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	row.Status = row.StockStatus()
	return &row, nil
}

// ListAll returns denormalized rows, optionally scoped to one branch
// (branchID 0 means every branch). Used by the alerts partitioning.
func (r *SQL) ListAll(ctx context.Context, branchID uint64) ([]model.InventoryRow, error) {
	if branchID != 0 {
		return r.queryRows(ctx, rowSelect+" WHERE bi.branch_id = ? ORDER BY b.name, i.name", branchID)
	}
	return r.queryRows(ctx, rowSelect+" ORDER BY b.name, i.name")
}

func (r *SQL) queryRows(ctx context.Context, q string, args ...interface{}) ([]model.InventoryRow, error) {
	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.InventoryRow, 0)
	for rows.Next() {
		var row model.InventoryRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		row.Status = row.StockStatus()
		result = append(result, row)
	}
	return result, nil
}

// GetEntryForUpdateTx locks the (item, branch) ledger row, the unit of
// contention for concurrent stock writes targeting the same pair.
func (r *SQL) GetEntryForUpdateTx(ctx context.Context, tx *sqlx.Tx, itemID, branchID uint64) (*model.InventoryEntry, error) {
	var e model.InventoryEntry
	q := `SELECT id, item_id, branch_id, current_stock, reorder_point, max_stock_level, last_restocked, created_at, updated_at
FROM branch_inventory WHERE item_id = ? AND branch_id = ? FOR UPDATE`
	err := tx.GetContext(ctx, &e, q, itemID, branchID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *SQL) InsertEntryTx(ctx context.Context, tx *sqlx.Tx, entry *model.InventoryEntry) (uint64, error) {
	q := `INSERT INTO branch_inventory (item_id, branch_id, current_stock, reorder_point, max_stock_level, last_restocked)
VALUES (?, ?, ?, ?, ?, NOW())`
	res, err := tx.ExecContext(ctx, q, entry.ItemID, entry.BranchID, entry.CurrentStock, entry.ReorderPoint, entry.MaxStockLevel)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) SetStockTx(ctx context.Context, tx *sqlx.Tx, entryID uint64, stock int64) error {
	q := "UPDATE branch_inventory SET current_stock = ?, last_restocked = NOW(), updated_at = NOW() WHERE id = ?"
	_, err := tx.ExecContext(ctx, q, stock, entryID)
	return err
}

// AddStockUpsertTx increments the destination ledger row, creating it with the
// given thresholds when absent. The increment happens inside the database, so
// concurrent transfers into the same pair never lose updates.
func (r *SQL) AddStockUpsertTx(ctx context.Context, tx *sqlx.Tx, itemID, branchID uint64, quantity, reorderPoint, maxStockLevel int64) error {
	q := `INSERT INTO branch_inventory (item_id, branch_id, current_stock, reorder_point, max_stock_level, last_restocked)
VALUES (?, ?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE current_stock = current_stock + VALUES(current_stock), last_restocked = NOW(), updated_at = NOW()`
	_, err := tx.ExecContext(ctx, q, itemID, branchID, quantity, reorderPoint, maxStockLevel)
	return err
}

// DecrementStockGuardedTx subtracts quantity only when enough stock is
// present; the WHERE guard doubles as the insufficiency check so a stale read
// can never drive the row negative. Returns false when the guard rejected the
// write (row missing or short of stock).
func (r *SQL) DecrementStockGuardedTx(ctx context.Context, tx *sqlx.Tx, itemID, branchID uint64, quantity int64) (bool, error) {
	q := `UPDATE branch_inventory SET current_stock = current_stock - ?, last_restocked = NOW(), updated_at = NOW()
WHERE item_id = ? AND branch_id = ? AND current_stock >= ?`
	res, err := tx.ExecContext(ctx, q, quantity, itemID, branchID, quantity)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) Summary(ctx context.Context) (*model.InventorySummary, error) {
	q := `SELECT COUNT(*) AS total_items,
COALESCE(SUM(bi.current_stock), 0) AS total_stock,
COALESCE(SUM(bi.current_stock * i.price), 0) AS total_value,
COALESCE(SUM(CASE WHEN bi.current_stock <= bi.reorder_point THEN 1 ELSE 0 END), 0) AS low_stock_items,
COALESCE(SUM(CASE WHEN bi.current_stock = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock_items
FROM branch_inventory bi
JOIN item i ON bi.item_id = i.id`
	var s model.InventorySummary
	if err := r.conn.GetContext(ctx, &s, q); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) CategoryBreakdown(ctx context.Context) ([]model.CategorySummary, error) {
	q := `SELECT i.category AS category,
COUNT(*) AS total_items,
COALESCE(SUM(bi.current_stock), 0) AS total_stock,
COALESCE(SUM(bi.current_stock * i.price), 0) AS total_value
FROM branch_inventory bi
JOIN item i ON bi.item_id = i.id
GROUP BY i.category
ORDER BY i.category`
	rows, err := r.conn.QueryxContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.CategorySummary, 0)
	for rows.Next() {
		var c model.CategorySummary
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *SQL) BranchPerformance(ctx context.Context) ([]model.BranchPerformance, error) {
	q := `SELECT b.id AS branch_id, b.code AS branch_code, b.name AS branch_name,
COUNT(bi.id) AS total_items,
COALESCE(SUM(bi.current_stock), 0) AS total_stock,
COALESCE(SUM(bi.current_stock * i.price), 0) AS total_value,
COALESCE(SUM(CASE WHEN bi.current_stock <= bi.reorder_point THEN 1 ELSE 0 END), 0) AS low_stock_items
FROM branch b
LEFT JOIN branch_inventory bi ON bi.branch_id = b.id
LEFT JOIN item i ON bi.item_id = i.id
WHERE b.status = 'active'
GROUP BY b.id, b.code, b.name
ORDER BY total_value DESC`
	rows, err := r.conn.QueryxContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.BranchPerformance, 0)
	for rows.Next() {
		var p model.BranchPerformance
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
