package model

type DashboardOverview struct {
	TotalItems    int64   `json:"total_items"`
	TotalBranches int64   `json:"total_branches"`
	TotalStock    int64   `json:"total_stock"`
	TotalValue    float64 `json:"total_value"`
	LowStockItems int64   `json:"low_stock_items"`
}

type BranchPerformance struct {
	BranchID      uint64  `db:"branch_id" json:"branch_id"`
	BranchCode    string  `db:"branch_code" json:"branch_code"`
	BranchName    string  `db:"branch_name" json:"branch_name"`
	TotalItems    int64   `db:"total_items" json:"total_items"`
	TotalStock    int64   `db:"total_stock" json:"total_stock"`
	TotalValue    float64 `db:"total_value" json:"total_value"`
	LowStockItems int64   `db:"low_stock_items" json:"low_stock_items"`
}

type DashboardResponse struct {
	Overview             DashboardOverview   `json:"overview"`
	CategoryDistribution []CategorySummary   `json:"category_distribution"`
	BranchPerformance    []BranchPerformance `json:"branch_performance"`
	RecentTransfers      []TransferRow       `json:"recent_transfers"`
}
