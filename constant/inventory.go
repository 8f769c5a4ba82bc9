package constant

// StockOperation is the verb accepted by the update-stock endpoint.
type StockOperation string

const (
	StockOpAdd      StockOperation = "add"
	StockOpSet      StockOperation = "set"
	StockOpSubtract StockOperation = "subtract"
)

// TransferStatus follows the transfer lifecycle. Orchestrated transfers are
// written as delivered immediately; the other states exist for history rows
// imported from older data.
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusInTransit TransferStatus = "in_transit"
	TransferStatusDelivered TransferStatus = "delivered"
	TransferStatusCancelled TransferStatus = "cancelled"
)

type BranchStatus string

const (
	BranchStatusActive      BranchStatus = "active"
	BranchStatusInactive    BranchStatus = "inactive"
	BranchStatusMaintenance BranchStatus = "maintenance"
)

func ValidBranchStatus(s string) bool {
	switch BranchStatus(s) {
	case BranchStatusActive, BranchStatusInactive, BranchStatusMaintenance:
		return true
	}
	return false
}

// StockStatus is derived from a ledger row, never stored.
type StockStatus string

const (
	StockStatusOutOfStock  StockStatus = "out_of_stock"
	StockStatusLow         StockStatus = "low"
	StockStatusOverstocked StockStatus = "overstocked"
	StockStatusNormal      StockStatus = "normal"
)

// MainBranchCode is the reserved code of the central bakery.
const MainBranchCode = "MAIN"

// Defaults for ledger rows created lazily by a transfer.
const (
	DefaultReorderPoint  = 10
	DefaultMaxStockLevel = 100
	// Rows created through the update-stock endpoint keep the schema default.
	DefaultReorderPointManual = 15
)

var ItemCategories = []string{"Breads", "Pastries", "Cakes", "Cookies", "Others"}

// Cache keys invalidated by any stock write.
const (
	CacheKeyInventorySummary = "cache:inventory:summary"
	CacheKeyDashboard        = "cache:reports:overview"
)
