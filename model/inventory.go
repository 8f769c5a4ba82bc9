package model

import (
	"time"

	"github.com/ramadhanif/bakery-inventory/constant"
)

// InventoryEntry is one branch_inventory row: the authoritative quantity of
// one item at one branch. Unique per (item, branch).
type InventoryEntry struct {
	ID            uint64     `db:"id" json:"id"`
	ItemID        uint64     `db:"item_id" json:"item_id"`
	BranchID      uint64     `db:"branch_id" json:"branch_id"`
	CurrentStock  int64      `db:"current_stock" json:"current_stock"`
	ReorderPoint  int64      `db:"reorder_point" json:"reorder_point"`
	MaxStockLevel int64      `db:"max_stock_level" json:"max_stock_level"`
	LastRestocked time.Time  `db:"last_restocked" json:"last_restocked"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// StockStatus derives the display status. Order matters: an empty row is
// out_of_stock even when the reorder point is zero.
func (e *InventoryEntry) StockStatus() constant.StockStatus {
	switch {
	case e.CurrentStock == 0:
		return constant.StockStatusOutOfStock
	case e.CurrentStock <= e.ReorderPoint:
		return constant.StockStatusLow
	case e.CurrentStock >= e.MaxStockLevel:
		return constant.StockStatusOverstocked
	}
	return constant.StockStatusNormal
}

// InventoryRow is an entry denormalized with item and branch info for display.
type InventoryRow struct {
	InventoryEntry
	ItemCode     string               `db:"item_code" json:"item_code"`
	ItemName     string               `db:"item_name" json:"item_name"`
	ItemCategory string               `db:"item_category" json:"item_category"`
	ItemPrice    float64              `db:"item_price" json:"item_price"`
	BranchCode   string               `db:"branch_code" json:"branch_code"`
	BranchName   string               `db:"branch_name" json:"branch_name"`
	Status       constant.StockStatus `db:"-" json:"status"`
}

type UpdateStockRequest struct {
	ItemID    uint64 `json:"item_id" validate:"required"`
	BranchID  uint64 `json:"branch_id" validate:"required"`
	Quantity  int64  `json:"quantity"`
	Operation string `json:"operation"`
}

type InventoryAlerts struct {
	OutOfStock  []InventoryRow `json:"outOfStock"`
	LowStock    []InventoryRow `json:"lowStock"`
	OverStocked []InventoryRow `json:"overStocked"`
}

type InventorySummary struct {
	TotalItems      int64   `db:"total_items" json:"total_items"`
	TotalStock      int64   `db:"total_stock" json:"total_stock"`
	TotalValue      float64 `db:"total_value" json:"total_value"`
	LowStockItems   int64   `db:"low_stock_items" json:"low_stock_items"`
	OutOfStockItems int64   `db:"out_of_stock_items" json:"out_of_stock_items"`
}

type CategorySummary struct {
	Category   string  `db:"category" json:"category"`
	TotalItems int64   `db:"total_items" json:"total_items"`
	TotalStock int64   `db:"total_stock" json:"total_stock"`
	TotalValue float64 `db:"total_value" json:"total_value"`
}

type InventorySummaryResponse struct {
	Summary           InventorySummary  `json:"summary"`
	CategoryBreakdown []CategorySummary `json:"category_breakdown"`
	GeneratedAt       time.Time         `json:"generated_at"`
}
