package model

import (
	"time"

	"github.com/ramadhanif/bakery-inventory/constant"
)

// TransferEntity is one append-only transfer row. FromBranchID nil means the
// central bakery is the source.
type TransferEntity struct {
	ID             uint64                  `db:"id" json:"id"`
	TrackingNumber string                  `db:"tracking_number" json:"tracking_number"`
	ItemID         uint64                  `db:"item_id" json:"item_id"`
	FromBranchID   *uint64                 `db:"from_branch_id" json:"from_branch_id"`
	ToBranchID     uint64                  `db:"to_branch_id" json:"to_branch_id"`
	Quantity       int64                   `db:"quantity" json:"quantity"`
	Status         constant.TransferStatus `db:"status" json:"status"`
	Notes          string                  `db:"notes" json:"notes,omitempty"`
	RequestDate    time.Time               `db:"request_date" json:"request_date"`
	DeliveryDate   *time.Time              `db:"delivery_date" json:"delivery_date,omitempty"`
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
}

// TransferRequest is the unified orchestrator input. FromBranchID nil selects
// the central bakery (item registry stock) as the source.
type TransferRequest struct {
	ItemID       uint64
	FromBranchID *uint64
	ToBranchID   uint64
	Quantity     int64
	Notes        string
}

// CentralTransferRequest is the code-addressed entry point used by the main
// bakery screen.
type CentralTransferRequest struct {
	ItemCode   string `json:"item_code" validate:"required"`
	BranchCode string `json:"branch_code" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,gte=1"`
	Notes      string `json:"notes" validate:"max=500"`
}

type BranchTransferRequest struct {
	ItemID       uint64 `json:"item_id" validate:"required"`
	FromBranchID uint64 `json:"from_branch_id" validate:"required"`
	ToBranchID   uint64 `json:"to_branch_id" validate:"required"`
	Quantity     int64  `json:"quantity" validate:"required,gte=1"`
	Notes        string `json:"notes" validate:"max=500"`
}

// TransferRow is a transfer denormalized for history display. FromBranchName
// is empty for central-sourced transfers.
type TransferRow struct {
	TransferEntity
	ItemCode       string  `db:"item_code" json:"item_code"`
	ItemName       string  `db:"item_name" json:"item_name"`
	FromBranchCode *string `db:"from_branch_code" json:"from_branch_code,omitempty"`
	FromBranchName *string `db:"from_branch_name" json:"from_branch_name,omitempty"`
	ToBranchCode   string  `db:"to_branch_code" json:"to_branch_code"`
	ToBranchName   string  `db:"to_branch_name" json:"to_branch_name"`
}

type TransferHistoryFilter struct {
	ItemID   uint64
	BranchID uint64
	Status   string
}

// TransferNetQuantity is the per-item net of delivered transfers for one
// branch: quantities received minus quantities sent onward.
type TransferNetQuantity struct {
	ItemID   uint64 `db:"item_id"`
	ItemCode string `db:"item_code"`
	Net      int64  `db:"net"`
}

// ReconciliationEntry flags a ledger row whose stock disagrees with the
// replayed transfer log. Direct update-stock calls bypass the log, so drift
// here is not necessarily an error; it marks rows to audit.
type ReconciliationEntry struct {
	ItemID      uint64 `json:"item_id"`
	ItemCode    string `json:"item_code"`
	LedgerStock int64  `json:"ledger_stock"`
	ReplayedNet int64  `json:"replayed_net"`
	Drift       int64  `json:"drift"`
}

type ReconciliationReport struct {
	BranchID    uint64                `json:"branch_id"`
	InSync      bool                  `json:"in_sync"`
	Drifted     []ReconciliationEntry `json:"drifted"`
	CheckedAt   time.Time             `json:"checked_at"`
	RowsChecked int                   `json:"rows_checked"`
}
