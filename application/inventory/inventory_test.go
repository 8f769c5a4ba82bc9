package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appinventory "github.com/ramadhanif/bakery-inventory/application/inventory"
	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	branchmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/branch"
	inventorymocks "github.com/ramadhanif/bakery-inventory/mocks/repository/inventory"
	itemmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/item"
	txmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/tx"
	"github.com/ramadhanif/bakery-inventory/model"
	cerr "github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			QueryTimeout: 5 * time.Second,
		},
		Cache: config.CacheConfig{
			SummaryTTL: 5 * time.Minute,
		},
	}
}

func TestInventoryApp_UpdateStock(t *testing.T) {
	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		itemRepo      *itemmocks.ItemRepository
		branchRepo    *branchmocks.BranchRepository
		inventoryRepo *inventorymocks.InventoryRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:        testConfig(),
			txRepo:        txmocks.NewTxRepository(t),
			itemRepo:      itemmocks.NewItemRepository(t),
			branchRepo:    branchmocks.NewBranchRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
		}
	}

	croissant := &model.ItemEntity{ID: 1, Code: "CRO", Name: "Croissant"}
	downtown := &model.BranchEntity{ID: 2, Code: "DTN001", Name: "Downtown"}

	resultRow := func(stock int64) *model.InventoryRow {
		row := &model.InventoryRow{}
		row.ItemID = 1
		row.BranchID = 2
		row.CurrentStock = stock
		row.ReorderPoint = 50
		return row
	}

	tests := []struct {
		name      string
		args      *model.UpdateStockRequest
		mockCall  func(f fields)
		wantStock int64
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: add to existing ledger row",
			args: &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: 5, Operation: "add"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(&model.InventoryEntry{
					ID: 7, ItemID: 1, BranchID: 2, CurrentStock: 10, ReorderPoint: 3,
				}, nil).Once()
				f.inventoryRepo.On("SetStockTx", mock.Anything, tx, uint64(7), int64(15)).Return(nil).Once()

				f.inventoryRepo.On("GetRow", mock.Anything, uint64(1), uint64(2)).Return(resultRow(15), nil).Once()
			},
			wantStock: 15,
		},
		{
			name: "success: subtract saturates at zero",
			args: &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: 10, Operation: "subtract"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(&model.InventoryEntry{
					ID: 7, ItemID: 1, BranchID: 2, CurrentStock: 4, ReorderPoint: 3,
				}, nil).Once()
				f.inventoryRepo.On("SetStockTx", mock.Anything, tx, uint64(7), int64(0)).Return(nil).Once()

				f.inventoryRepo.On("GetRow", mock.Anything, uint64(1), uint64(2)).Return(resultRow(0), nil).Once()
			},
			wantStock: 0,
		},
		{
			name: "success: subtract on absent row creates an empty ledger entry",
			args: &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: 10, Operation: "subtract"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryEntry) bool {
					return e.ItemID == 1 && e.BranchID == 2 && e.CurrentStock == 0 &&
						e.ReorderPoint == constant.DefaultReorderPointManual
				})).Return(uint64(8), nil).Once()

				f.inventoryRepo.On("GetRow", mock.Anything, uint64(1), uint64(2)).Return(resultRow(0), nil).Once()
			},
			wantStock: 0,
		},
		{
			name: "success: set on absent row seeds the quantity",
			args: &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: 40, Operation: "set"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.MatchedBy(func(e *model.InventoryEntry) bool {
					return e.CurrentStock == 40
				})).Return(uint64(8), nil).Once()

				f.inventoryRepo.On("GetRow", mock.Anything, uint64(1), uint64(2)).Return(resultRow(40), nil).Once()
			},
			wantStock: 40,
		},
		{
			name: "error: losing the first-write race maps to a retryable conflict",
			args: &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: 40, Operation: "set"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.inventoryRepo.On("InsertEntryTx", mock.Anything, tx, mock.Anything).
					Return(uint64(0), &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:    "error: unknown operation",
			args:    &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: 5, Operation: "increment"},
			wantErr: true,
			errCode: constant.ErrInvalidOperation,
		},
		{
			name:    "error: negative quantity",
			args:    &model.UpdateStockRequest{ItemID: 1, BranchID: 2, Quantity: -5, Operation: "add"},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: item not found",
			args: &model.UpdateStockRequest{ItemID: 99, BranchID: 2, Quantity: 5, Operation: "add"},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appinventory.NewInventoryApp(f.config, f.txRepo, f.itemRepo, f.branchRepo, f.inventoryRepo, nil, nil)

			got, err := app.UpdateStock(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStock() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.CurrentStock != tt.wantStock {
				t.Fatalf("stock = %d, want %d", got.CurrentStock, tt.wantStock)
			}
		})
	}
}

func TestInventoryApp_GetAlerts(t *testing.T) {
	row := func(stock, reorder, max int64) model.InventoryRow {
		r := model.InventoryRow{}
		r.CurrentStock = stock
		r.ReorderPoint = reorder
		r.MaxStockLevel = max
		r.Status = r.StockStatus()
		return r
	}

	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	inventoryRepo.On("ListAll", mock.Anything, uint64(0)).Return([]model.InventoryRow{
		row(0, 10, 100),  // out of stock
		row(5, 10, 100),  // low, not out
		row(50, 10, 100), // normal
		row(150, 10, 100), // overstocked
	}, nil).Once()

	app := appinventory.NewInventoryApp(testConfig(), nil, nil, nil, inventoryRepo, nil, nil)

	got, err := app.GetAlerts(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetAlerts() error = %v", err)
	}
	if len(got.OutOfStock) != 1 || len(got.LowStock) != 1 || len(got.OverStocked) != 1 {
		t.Fatalf("partition = out:%d low:%d over:%d", len(got.OutOfStock), len(got.LowStock), len(got.OverStocked))
	}
	if got.LowStock[0].CurrentStock != 5 {
		t.Fatalf("low stock row = %+v", got.LowStock[0])
	}
}

func TestInventoryApp_GetSummary(t *testing.T) {
	t.Run("aggregates ledger when cache is empty", func(t *testing.T) {
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		inventoryRepo.On("Summary", mock.Anything).Return(&model.InventorySummary{
			TotalItems: 4, TotalStock: 120, TotalValue: 310.5, LowStockItems: 1, OutOfStockItems: 1,
		}, nil).Once()
		inventoryRepo.On("CategoryBreakdown", mock.Anything).Return([]model.CategorySummary{
			{Category: "Breads", TotalItems: 2, TotalStock: 70},
		}, nil).Once()

		app := appinventory.NewInventoryApp(testConfig(), nil, nil, nil, inventoryRepo, nil, nil)

		got, err := app.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() error = %v", err)
		}
		if got.Summary.TotalStock != 120 || len(got.CategoryBreakdown) != 1 {
			t.Fatalf("summary = %+v", got)
		}
		if got.GeneratedAt.IsZero() {
			t.Fatal("GeneratedAt should be set")
		}
	})
}
