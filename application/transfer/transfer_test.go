package transfer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apptransfer "github.com/ramadhanif/bakery-inventory/application/transfer"
	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	branchmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/branch"
	inventorymocks "github.com/ramadhanif/bakery-inventory/mocks/repository/inventory"
	itemmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/item"
	transfermocks "github.com/ramadhanif/bakery-inventory/mocks/repository/transfer"
	txmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/tx"
	"github.com/ramadhanif/bakery-inventory/model"
	cerr "github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Tests pass nil publisher and nil redis repo; the app checks both before use.

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			QueryTimeout: 5 * time.Second,
		},
	}
}

func uint64Ptr(v uint64) *uint64 { return &v }

func TestTransferApp_Transfer(t *testing.T) {
	type fields struct {
		config        *config.Config
		txRepo        *txmocks.TxRepository
		itemRepo      *itemmocks.ItemRepository
		branchRepo    *branchmocks.BranchRepository
		inventoryRepo *inventorymocks.InventoryRepository
		transferRepo  *transfermocks.TransferRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config:        testConfig(),
			txRepo:        txmocks.NewTxRepository(t),
			itemRepo:      itemmocks.NewItemRepository(t),
			branchRepo:    branchmocks.NewBranchRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			transferRepo:  transfermocks.NewTransferRepository(t),
		}
	}

	croissant := &model.ItemEntity{ID: 1, Code: "CRO", Name: "Croissant", Stock: 100}
	downtown := &model.BranchEntity{ID: 2, Code: "DTN001", Name: "Downtown"}
	uptown := &model.BranchEntity{ID: 3, Code: "UPT001", Name: "Uptown"}

	tests := []struct {
		name     string
		args     *model.TransferRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.TransferRow)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: central to branch moves stock and records delivered transfer",
			args: &model.TransferRequest{ItemID: 1, ToBranchID: 2, Quantity: 20},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.itemRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(croissant, nil).Once()
				f.itemRepo.On("DecrementStockTx", mock.Anything, tx, uint64(1), int64(20)).Return(nil).Once()

				f.inventoryRepo.On("AddStockUpsertTx", mock.Anything, tx, uint64(1), uint64(2), int64(20),
					int64(constant.DefaultReorderPoint), int64(constant.DefaultMaxStockLevel)).Return(nil).Once()

				f.transferRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.TransferEntity) bool {
					return tr.ItemID == 1 &&
						tr.FromBranchID == nil &&
						tr.ToBranchID == 2 &&
						tr.Quantity == 20 &&
						tr.Status == constant.TransferStatusDelivered &&
						tr.DeliveryDate != nil &&
						strings.HasPrefix(tr.TrackingNumber, "TRF")
				})).Return(uint64(10), nil).Once()
			},
			check: func(t *testing.T, got *model.TransferRow) {
				if got.ID != 10 || got.Quantity != 20 {
					t.Fatalf("row = %+v", got)
				}
				if got.FromBranchCode != nil {
					t.Fatal("central transfer should have no source branch")
				}
				if got.ToBranchCode != "DTN001" || got.ItemCode != "CRO" {
					t.Fatalf("denormalized fields = %+v", got)
				}
			},
		},
		{
			name: "success: branch to branch uses guarded decrement",
			args: &model.TransferRequest{ItemID: 1, FromBranchID: uint64Ptr(2), ToBranchID: 3, Quantity: 15},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(3)).Return(uptown, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(&model.InventoryEntry{
					ID: 7, ItemID: 1, BranchID: 2, CurrentStock: 50, ReorderPoint: 10,
				}, nil).Once()
				f.inventoryRepo.On("DecrementStockGuardedTx", mock.Anything, tx, uint64(1), uint64(2), int64(15)).Return(true, nil).Once()
				f.inventoryRepo.On("AddStockUpsertTx", mock.Anything, tx, uint64(1), uint64(3), int64(15),
					int64(constant.DefaultReorderPoint), int64(constant.DefaultMaxStockLevel)).Return(nil).Once()

				f.transferRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.TransferEntity) bool {
					return tr.FromBranchID != nil && *tr.FromBranchID == 2 && tr.ToBranchID == 3
				})).Return(uint64(11), nil).Once()
			},
			check: func(t *testing.T, got *model.TransferRow) {
				if got.FromBranchCode == nil || *got.FromBranchCode != "DTN001" {
					t.Fatalf("source branch = %+v", got.FromBranchCode)
				}
				if got.ToBranchCode != "UPT001" {
					t.Fatalf("destination branch = %s", got.ToBranchCode)
				}
			},
		},
		{
			name:    "error: zero quantity",
			args:    &model.TransferRequest{ItemID: 1, ToBranchID: 2, Quantity: 0},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: source and destination are the same branch",
			args:    &model.TransferRequest{ItemID: 1, FromBranchID: uint64Ptr(2), ToBranchID: 2, Quantity: 5},
			wantErr: true,
			errCode: constant.ErrSameBranch,
		},
		{
			name: "error: item not found",
			args: &model.TransferRequest{ItemID: 99, ToBranchID: 2, Quantity: 5},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: destination branch not found",
			args: &model.TransferRequest{ItemID: 1, ToBranchID: 99, Quantity: 5},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insufficient central stock rolls back",
			args: &model.TransferRequest{ItemID: 1, ToBranchID: 2, Quantity: 500},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.itemRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(croissant, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: source branch has no ledger row",
			args: &model.TransferRequest{ItemID: 1, FromBranchID: uint64Ptr(2), ToBranchID: 3, Quantity: 5},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(3)).Return(uptown, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: guarded decrement rejects a racing writer",
			args: &model.TransferRequest{ItemID: 1, FromBranchID: uint64Ptr(2), ToBranchID: 3, Quantity: 5},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(3)).Return(uptown, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetEntryForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(&model.InventoryEntry{
					ID: 7, ItemID: 1, BranchID: 2, CurrentStock: 50,
				}, nil).Once()
				f.inventoryRepo.On("DecrementStockGuardedTx", mock.Anything, tx, uint64(1), uint64(2), int64(5)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: BeginTx fails",
			args: &model.TransferRequest{ItemID: 1, ToBranchID: 2, Quantity: 5},
			mockCall: func(f fields) {
				f.itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
				f.branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apptransfer.NewTransferApp(f.config, f.txRepo, f.itemRepo, f.branchRepo, f.inventoryRepo, f.transferRepo, nil, nil)

			got, err := app.Transfer(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transfer() error = %v, wantErr %v", err, tt.wantErr)
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
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestTransferApp_TransferByCode(t *testing.T) {
	croissant := &model.ItemEntity{ID: 1, Code: "CRO", Name: "Croissant", Stock: 100}
	downtown := &model.BranchEntity{ID: 2, Code: "DTN001", Name: "Downtown"}

	t.Run("success: codes are normalized before lookup", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		itemRepo := itemmocks.NewItemRepository(t)
		branchRepo := branchmocks.NewBranchRepository(t)
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		transferRepo := transfermocks.NewTransferRepository(t)

		itemRepo.On("GetByCode", mock.Anything, "CRO").Return(croissant, nil).Once()
		branchRepo.On("GetByCode", mock.Anything, "DTN001").Return(downtown, nil).Once()

		itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(croissant, nil).Once()
		branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()
		itemRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(croissant, nil).Once()
		itemRepo.On("DecrementStockTx", mock.Anything, tx, uint64(1), int64(20)).Return(nil).Once()
		inventoryRepo.On("AddStockUpsertTx", mock.Anything, tx, uint64(1), uint64(2), int64(20),
			int64(constant.DefaultReorderPoint), int64(constant.DefaultMaxStockLevel)).Return(nil).Once()
		transferRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(10), nil).Once()

		app := apptransfer.NewTransferApp(testConfig(), txRepo, itemRepo, branchRepo, inventoryRepo, transferRepo, nil, nil)

		got, err := app.TransferByCode(context.Background(), &model.CentralTransferRequest{
			ItemCode:   " cro ",
			BranchCode: "dtn001",
			Quantity:   20,
		})
		if err != nil {
			t.Fatalf("TransferByCode() error = %v", err)
		}
		if got.ItemCode != "CRO" || got.ToBranchCode != "DTN001" {
			t.Fatalf("row = %+v", got)
		}
	})

	t.Run("error: unknown item code", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		itemRepo := itemmocks.NewItemRepository(t)
		branchRepo := branchmocks.NewBranchRepository(t)
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		transferRepo := transfermocks.NewTransferRepository(t)

		itemRepo.On("GetByCode", mock.Anything, "NOPE").Return(nil, nil).Once()

		app := apptransfer.NewTransferApp(testConfig(), txRepo, itemRepo, branchRepo, inventoryRepo, transferRepo, nil, nil)

		_, err := app.TransferByCode(context.Background(), &model.CentralTransferRequest{
			ItemCode:   "NOPE",
			BranchCode: "DTN001",
			Quantity:   5,
		})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error = %v", err)
		}
	})
}

func TestTransferApp_Reconcile(t *testing.T) {
	downtown := &model.BranchEntity{ID: 2, Code: "DTN001", Name: "Downtown"}

	ledgerRow := func(itemID uint64, code string, stock int64) model.InventoryRow {
		row := model.InventoryRow{}
		row.ItemID = itemID
		row.ItemCode = code
		row.CurrentStock = stock
		return row
	}

	t.Run("in sync when ledger matches replayed net", func(t *testing.T) {
		branchRepo := branchmocks.NewBranchRepository(t)
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		transferRepo := transfermocks.NewTransferRepository(t)

		branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()
		inventoryRepo.On("GetByBranch", mock.Anything, uint64(2), false).Return([]model.InventoryRow{
			ledgerRow(1, "CRO", 20),
			ledgerRow(2, "BAG", 5),
		}, nil).Once()
		transferRepo.On("NetDeliveredByBranch", mock.Anything, uint64(2)).Return([]model.TransferNetQuantity{
			{ItemID: 1, ItemCode: "CRO", Net: 20},
			{ItemID: 2, ItemCode: "BAG", Net: 5},
		}, nil).Once()

		app := apptransfer.NewTransferApp(testConfig(), nil, nil, branchRepo, inventoryRepo, transferRepo, nil, nil)

		got, err := app.Reconcile(context.Background(), 2)
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if !got.InSync || len(got.Drifted) != 0 || got.RowsChecked != 2 {
			t.Fatalf("report = %+v", got)
		}
	})

	t.Run("flags drift from direct stock updates", func(t *testing.T) {
		branchRepo := branchmocks.NewBranchRepository(t)
		inventoryRepo := inventorymocks.NewInventoryRepository(t)
		transferRepo := transfermocks.NewTransferRepository(t)

		branchRepo.On("GetByID", mock.Anything, uint64(2)).Return(downtown, nil).Once()
		inventoryRepo.On("GetByBranch", mock.Anything, uint64(2), false).Return([]model.InventoryRow{
			ledgerRow(1, "CRO", 35),
		}, nil).Once()
		transferRepo.On("NetDeliveredByBranch", mock.Anything, uint64(2)).Return([]model.TransferNetQuantity{
			{ItemID: 1, ItemCode: "CRO", Net: 20},
		}, nil).Once()

		app := apptransfer.NewTransferApp(testConfig(), nil, nil, branchRepo, inventoryRepo, transferRepo, nil, nil)

		got, err := app.Reconcile(context.Background(), 2)
		if err != nil {
			t.Fatalf("Reconcile() error = %v", err)
		}
		if got.InSync || len(got.Drifted) != 1 {
			t.Fatalf("report = %+v", got)
		}
		d := got.Drifted[0]
		if d.LedgerStock != 35 || d.ReplayedNet != 20 || d.Drift != 15 {
			t.Fatalf("drift entry = %+v", d)
		}
	})

	t.Run("error: branch not found", func(t *testing.T) {
		branchRepo := branchmocks.NewBranchRepository(t)
		branchRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := apptransfer.NewTransferApp(testConfig(), nil, nil, branchRepo, nil, nil, nil, nil)

		_, err := app.Reconcile(context.Background(), 99)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error = %v", err)
		}
	})
}
