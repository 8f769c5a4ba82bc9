package inventory

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	branchrepo "github.com/ramadhanif/bakery-inventory/repository/branch"
	inventoryrepo "github.com/ramadhanif/bakery-inventory/repository/inventory"
	itemrepo "github.com/ramadhanif/bakery-inventory/repository/item"
	redisrepo "github.com/ramadhanif/bakery-inventory/repository/redis"
	txrepo "github.com/ramadhanif/bakery-inventory/repository/tx"
	"github.com/ramadhanif/bakery-inventory/thirdparty/rabbitmq"
	utilcontext "github.com/ramadhanif/bakery-inventory/utils/context"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"github.com/ramadhanif/bakery-inventory/utils/mysqlerr"
	"go.uber.org/zap"
)

type InventoryApp interface {
	GetBranchInventory(ctx context.Context, branchID uint64, lowStockOnly bool) ([]model.InventoryRow, error)
	GetMainInventory(ctx context.Context, filter *model.ItemFilter) (*model.ItemListResponse, error)
	UpdateStock(ctx context.Context, req *model.UpdateStockRequest) (*model.InventoryRow, error)
	GetAlerts(ctx context.Context, branchID uint64) (*model.InventoryAlerts, error)
	GetSummary(ctx context.Context) (*model.InventorySummaryResponse, error)
}

type inventoryAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	itemRepo      itemrepo.ItemRepository
	branchRepo    branchrepo.BranchRepository
	inventoryRepo inventoryrepo.InventoryRepository
	redisRepo     redisrepo.Repository
	publisher     *rabbitmq.Publisher
}

func NewInventoryApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	itemRepo itemrepo.ItemRepository,
	branchRepo branchrepo.BranchRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	redisRepo redisrepo.Repository,
	publisher *rabbitmq.Publisher,
) InventoryApp {
	return &inventoryAppImpl{
		config:        config,
		txRepo:        txRepo,
		itemRepo:      itemRepo,
		branchRepo:    branchRepo,
		inventoryRepo: inventoryRepo,
		redisRepo:     redisRepo,
		publisher:     publisher,
	}
}

func (s *inventoryAppImpl) GetBranchInventory(ctx context.Context, branchID uint64, lowStockOnly bool) ([]model.InventoryRow, error) {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		logger.Error("[GetBranchInventory] get branch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if branch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	rows, err := s.inventoryRepo.GetByBranch(ctx, branchID, lowStockOnly)
	if err != nil {
		logger.Error("[GetBranchInventory] query ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

// GetMainInventory exposes the central bakery's item stock, which lives on the
// item registry rather than the branch ledger.
func (s *inventoryAppImpl) GetMainInventory(ctx context.Context, filter *model.ItemFilter) (*model.ItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	items, total, err := s.itemRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[GetMainInventory] list items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ItemListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *inventoryAppImpl) UpdateStock(ctx context.Context, req *model.UpdateStockRequest) (*model.InventoryRow, error) {
	op := constant.StockOperation(req.Operation)
	if op != constant.StockOpAdd && op != constant.StockOpSet && op != constant.StockOpSubtract {
		return nil, errors.SetCustomError(constant.ErrInvalidOperation)
	}
	if req.Quantity < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	item, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		logger.Error("[UpdateStock] get item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	branch, err := s.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		logger.Error("[UpdateStock] get branch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if branch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	txCtx, cancel := context.WithTimeout(ctx, s.config.Database.QueryTimeout)
	defer cancel()

	tx, err := s.txRepo.BeginTx(txCtx)
	if err != nil {
		logger.Error("[UpdateStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entry, err := s.inventoryRepo.GetEntryForUpdateTx(txCtx, tx, req.ItemID, req.BranchID)
	if err != nil {
		logger.Error("[UpdateStock] lock ledger row", zap.String("error", err.Error()))
		return nil, s.mapTxError(err)
	}

	var newStock int64
	var reorderPoint int64
	if entry == nil {
		// First write for this (item, branch) pair creates the ledger row.
		// Subtract on an absent row saturates to an empty entry.
		newStock = req.Quantity
		if op == constant.StockOpSubtract {
			newStock = 0
		}
		reorderPoint = constant.DefaultReorderPointManual
		_, err = s.inventoryRepo.InsertEntryTx(txCtx, tx, &model.InventoryEntry{
			ItemID:        req.ItemID,
			BranchID:      req.BranchID,
			CurrentStock:  newStock,
			ReorderPoint:  reorderPoint,
			MaxStockLevel: constant.DefaultMaxStockLevel,
		})
		if err != nil {
			// Two concurrent first writes race to create the row; the loser
			// hits the (item, branch) unique key and should retry.
			if mysqlerr.IsDuplicate(err) {
				return nil, errors.SetCustomError(constant.ErrConflict)
			}
			logger.Error("[UpdateStock] insert ledger row", zap.String("error", err.Error()))
			return nil, s.mapTxError(err)
		}
	} else {
		switch op {
		case constant.StockOpAdd:
			newStock = entry.CurrentStock + req.Quantity
		case constant.StockOpSet:
			newStock = req.Quantity
		case constant.StockOpSubtract:
			newStock = entry.CurrentStock - req.Quantity
			if newStock < 0 {
				newStock = 0
			}
		}
		reorderPoint = entry.ReorderPoint
		if err := s.inventoryRepo.SetStockTx(txCtx, tx, entry.ID, newStock); err != nil {
			logger.Error("[UpdateStock] write stock", zap.String("error", err.Error()))
			return nil, s.mapTxError(err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStock] commit tx", zap.String("error", err.Error()))
		return nil, s.mapTxError(err)
	}
	committed = true

	userID, _ := utilcontext.GetUserID(ctx)
	logger.Info("[UpdateStock] applied",
		zap.Uint64("item_id", req.ItemID),
		zap.Uint64("branch_id", req.BranchID),
		zap.String("operation", req.Operation),
		zap.Int64("stock", newStock),
		zap.Uint64("user_id", userID))

	s.invalidateCaches(ctx)
	if newStock <= reorderPoint {
		s.publishAlert(item, req.BranchID, newStock, reorderPoint)
	}

	row, err := s.inventoryRepo.GetRow(ctx, req.ItemID, req.BranchID)
	if err != nil {
		logger.Error("[UpdateStock] read back row", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return row, nil
}

// GetAlerts partitions every ledger row by stock status. A row counts as low
// stock only when it still has units left; empty rows go to out-of-stock.
func (s *inventoryAppImpl) GetAlerts(ctx context.Context, branchID uint64) (*model.InventoryAlerts, error) {
	rows, err := s.inventoryRepo.ListAll(ctx, branchID)
	if err != nil {
		logger.Error("[GetAlerts] list ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	alerts := &model.InventoryAlerts{
		OutOfStock:  make([]model.InventoryRow, 0),
		LowStock:    make([]model.InventoryRow, 0),
		OverStocked: make([]model.InventoryRow, 0),
	}
	for _, row := range rows {
		switch row.Status {
		case constant.StockStatusOutOfStock:
			alerts.OutOfStock = append(alerts.OutOfStock, row)
		case constant.StockStatusLow:
			alerts.LowStock = append(alerts.LowStock, row)
		case constant.StockStatusOverstocked:
			alerts.OverStocked = append(alerts.OverStocked, row)
		}
	}
	return alerts, nil
}

func (s *inventoryAppImpl) GetSummary(ctx context.Context) (*model.InventorySummaryResponse, error) {
	if s.redisRepo != nil {
		cached, err := s.redisRepo.Get(ctx, constant.CacheKeyInventorySummary)
		if err == nil && cached != "" {
			var resp model.InventorySummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	summary, err := s.inventoryRepo.Summary(ctx)
	if err != nil {
		logger.Error("[GetSummary] aggregate ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	categories, err := s.inventoryRepo.CategoryBreakdown(ctx)
	if err != nil {
		logger.Error("[GetSummary] category breakdown", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.InventorySummaryResponse{
		Summary:           *summary,
		CategoryBreakdown: categories,
		GeneratedAt:       time.Now(),
	}

	if s.redisRepo != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.redisRepo.SetWithTTL(ctx, constant.CacheKeyInventorySummary, string(raw), s.config.Cache.SummaryTTL); err != nil {
				logger.Warn("[GetSummary] cache write", zap.String("error", err.Error()))
			}
		}
	}
	return resp, nil
}

func (s *inventoryAppImpl) mapTxError(err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.SetCustomError(constant.ErrTimeout)
	case mysqlerr.IsLockConflict(err):
		return errors.SetCustomError(constant.ErrConflict)
	}
	return errors.SetCustomError(constant.ErrInternal)
}

func (s *inventoryAppImpl) invalidateCaches(ctx context.Context) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.Delete(ctx, constant.CacheKeyInventorySummary, constant.CacheKeyDashboard); err != nil {
		logger.Warn("[UpdateStock] invalidate caches", zap.String("error", err.Error()))
	}
}

func (s *inventoryAppImpl) publishAlert(item *model.ItemEntity, branchID uint64, stock, reorderPoint int64) {
	if s.publisher == nil {
		return
	}

	status := string(constant.StockStatusLow)
	if stock <= 0 {
		status = string(constant.StockStatusOutOfStock)
	}
	err := s.publisher.PublishStockAlert(rabbitmq.StockAlertMessage{
		ItemID:       item.ID,
		ItemCode:     item.Code,
		BranchID:     branchID,
		CurrentStock: stock,
		ReorderPoint: reorderPoint,
		Status:       status,
		OccurredAt:   time.Now(),
	})
	if err != nil {
		logger.Error("[UpdateStock] publish stock alert", zap.String("error", err.Error()))
	}
}
