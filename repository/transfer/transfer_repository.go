package transfer

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ramadhanif/bakery-inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TransferRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, transfer *model.TransferEntity) (uint64, error)
	History(ctx context.Context, filter *model.TransferHistoryFilter) ([]model.TransferRow, error)
	Recent(ctx context.Context, limit int) ([]model.TransferRow, error)
	NetDeliveredByBranch(ctx context.Context, branchID uint64) ([]model.TransferNetQuantity, error)
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

const rowSelect = `SELECT t.id, t.tracking_number, t.item_id, t.from_branch_id, t.to_branch_id, t.quantity,
t.status, t.notes, t.request_date, t.delivery_date, t.created_at,
i.code AS item_code, i.name AS item_name,
fb.code AS from_branch_code, fb.name AS from_branch_name,
tb.code AS to_branch_code, tb.name AS to_branch_name
FROM transfer t
JOIN item i ON t.item_id = i.id
LEFT JOIN branch fb ON t.from_branch_id = fb.id
JOIN branch tb ON t.to_branch_id = tb.id`

// InsertTx appends a transfer row. Rows are never updated or deleted.
func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, transfer *model.TransferEntity) (uint64, error) {
	q := `INSERT INTO transfer (tracking_number, item_id, from_branch_id, to_branch_id, quantity, status, notes, request_date, delivery_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		transfer.TrackingNumber, transfer.ItemID, transfer.FromBranchID, transfer.ToBranchID,
		transfer.Quantity, transfer.Status, transfer.Notes, transfer.RequestDate, transfer.DeliveryDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) History(ctx context.Context, filter *model.TransferHistoryFilter) ([]model.TransferRow, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if filter.ItemID != 0 {
		where = append(where, "t.item_id = ?")
		args = append(args, filter.ItemID)
	}
	if filter.BranchID != 0 {
		where = append(where, "(t.from_branch_id = ? OR t.to_branch_id = ?)")
		args = append(args, filter.BranchID, filter.BranchID)
	}
	if filter.Status != "" && filter.Status != "all" {
		where = append(where, "t.status = ?")
		args = append(args, filter.Status)
	}

	q := rowSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY t.request_date DESC, t.id DESC"

	return r.queryRows(ctx, q, args...)
}

func (r *SQL) Recent(ctx context.Context, limit int) ([]model.TransferRow, error) {
	return r.queryRows(ctx, rowSelect+" ORDER BY t.created_at DESC, t.id DESC LIMIT ?", limit)
}

// NetDeliveredByBranch replays the delivered transfer log for one branch:
// per item, quantities received minus quantities sent onward. Used only by
// the reconciliation report; the ledger stays the live source of truth.
func (r *SQL) NetDeliveredByBranch(ctx context.Context, branchID uint64) ([]model.TransferNetQuantity, error) {
	q := `SELECT i.id AS item_id, i.code AS item_code,
COALESCE(SUM(CASE WHEN t.to_branch_id = ? THEN t.quantity ELSE -t.quantity END), 0) AS net
FROM transfer t
JOIN item i ON t.item_id = i.id
WHERE t.status = 'delivered' AND (t.to_branch_id = ? OR t.from_branch_id = ?)
GROUP BY i.id, i.code`
	rows, err := r.conn.QueryxContext(ctx, q, branchID, branchID, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.TransferNetQuantity, 0)
	for rows.Next() {
		var n model.TransferNetQuantity
		if err := rows.StructScan(&n); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func (r *SQL) queryRows(ctx context.Context, q string, args ...interface{}) ([]model.TransferRow, error) {
	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.TransferRow, 0)
	for rows.Next() {
		var row model.TransferRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, nil
}
