package transfer

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	branchrepo "github.com/ramadhanif/bakery-inventory/repository/branch"
	inventoryrepo "github.com/ramadhanif/bakery-inventory/repository/inventory"
	itemrepo "github.com/ramadhanif/bakery-inventory/repository/item"
	redisrepo "github.com/ramadhanif/bakery-inventory/repository/redis"
	transferrepo "github.com/ramadhanif/bakery-inventory/repository/transfer"
	txrepo "github.com/ramadhanif/bakery-inventory/repository/tx"
	"github.com/ramadhanif/bakery-inventory/thirdparty/rabbitmq"
	utilcontext "github.com/ramadhanif/bakery-inventory/utils/context"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"github.com/ramadhanif/bakery-inventory/utils/mysqlerr"
	"go.uber.org/zap"
)

// TransferApp is the single stock-movement orchestrator. Every transfer,
// whether sourced from the central bakery or from a branch, goes through
// Transfer and runs as one all-or-nothing transaction.
type TransferApp interface {
	Transfer(ctx context.Context, req *model.TransferRequest) (*model.TransferRow, error)
	TransferByCode(ctx context.Context, req *model.CentralTransferRequest) (*model.TransferRow, error)
	History(ctx context.Context, filter *model.TransferHistoryFilter) ([]model.TransferRow, error)
	Reconcile(ctx context.Context, branchID uint64) (*model.ReconciliationReport, error)
}

type transferAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	itemRepo      itemrepo.ItemRepository
	branchRepo    branchrepo.BranchRepository
	inventoryRepo inventoryrepo.InventoryRepository
	transferRepo  transferrepo.TransferRepository
	redisRepo     redisrepo.Repository
	publisher     *rabbitmq.Publisher
}

func NewTransferApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	itemRepo itemrepo.ItemRepository,
	branchRepo branchrepo.BranchRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	transferRepo transferrepo.TransferRepository,
	redisRepo redisrepo.Repository,
	publisher *rabbitmq.Publisher,
) TransferApp {
	return &transferAppImpl{
		config:        config,
		txRepo:        txRepo,
		itemRepo:      itemRepo,
		branchRepo:    branchRepo,
		inventoryRepo: inventoryRepo,
		transferRepo:  transferRepo,
		redisRepo:     redisRepo,
		publisher:     publisher,
	}
}

// TransferByCode resolves the code-addressed central-to-branch request used
// by the main bakery screen, then delegates to Transfer.
func (s *transferAppImpl) TransferByCode(ctx context.Context, req *model.CentralTransferRequest) (*model.TransferRow, error) {
	item, err := s.itemRepo.GetByCode(ctx, model.NormalizeCode(req.ItemCode))
	if err != nil {
		logger.Error("[TransferByCode] get item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	branch, err := s.branchRepo.GetByCode(ctx, model.NormalizeCode(req.BranchCode))
	if err != nil {
		logger.Error("[TransferByCode] get branch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if branch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return s.Transfer(ctx, &model.TransferRequest{
		ItemID:     item.ID,
		ToBranchID: branch.ID,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
	})
}

func (s *transferAppImpl) Transfer(ctx context.Context, req *model.TransferRequest) (*model.TransferRow, error) {
	if req.Quantity < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if req.FromBranchID != nil && *req.FromBranchID == req.ToBranchID {
		return nil, errors.SetCustomError(constant.ErrSameBranch)
	}

	item, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		logger.Error("[Transfer] get item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	toBranch, err := s.branchRepo.GetByID(ctx, req.ToBranchID)
	if err != nil {
		logger.Error("[Transfer] get destination branch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if toBranch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	var fromBranch *model.BranchEntity
	if req.FromBranchID != nil {
		fromBranch, err = s.branchRepo.GetByID(ctx, *req.FromBranchID)
		if err != nil {
			logger.Error("[Transfer] get source branch", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if fromBranch == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	// Bound the whole transaction so a lost lock surfaces as a retryable
	// timeout instead of hanging the request.
	ctx, cancel := context.WithTimeout(ctx, s.config.Database.QueryTimeout)
	defer cancel()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transfer] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	var sourceRemaining int64
	var sourceReorderPoint int64

	if req.FromBranchID == nil {
		// Central source: the item row's stock counter, locked for the
		// duration so concurrent transfers of the same item serialize.
		locked, err := s.itemRepo.GetForUpdateTx(ctx, tx, req.ItemID)
		if err != nil {
			logger.Error("[Transfer] lock item", zap.String("error", err.Error()))
			return nil, s.mapTxError(err)
		}
		if locked == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if locked.Stock < req.Quantity {
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		if err := s.itemRepo.DecrementStockTx(ctx, tx, req.ItemID, req.Quantity); err != nil {
			logger.Error("[Transfer] decrement central stock", zap.String("error", err.Error()))
			return nil, s.mapTxError(err)
		}
		sourceRemaining = locked.Stock - req.Quantity
		sourceReorderPoint = constant.DefaultReorderPoint
	} else {
		entry, err := s.inventoryRepo.GetEntryForUpdateTx(ctx, tx, req.ItemID, *req.FromBranchID)
		if err != nil {
			logger.Error("[Transfer] lock source ledger row", zap.String("error", err.Error()))
			return nil, s.mapTxError(err)
		}
		if entry == nil || entry.CurrentStock < req.Quantity {
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		ok, err := s.inventoryRepo.DecrementStockGuardedTx(ctx, tx, req.ItemID, *req.FromBranchID, req.Quantity)
		if err != nil {
			logger.Error("[Transfer] decrement source stock", zap.String("error", err.Error()))
			return nil, s.mapTxError(err)
		}
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		sourceRemaining = entry.CurrentStock - req.Quantity
		sourceReorderPoint = entry.ReorderPoint
	}

	err = s.inventoryRepo.AddStockUpsertTx(ctx, tx, req.ItemID, req.ToBranchID, req.Quantity,
		constant.DefaultReorderPoint, constant.DefaultMaxStockLevel)
	if err != nil {
		logger.Error("[Transfer] upsert destination stock", zap.String("error", err.Error()))
		return nil, s.mapTxError(err)
	}

	now := time.Now()
	entity := &model.TransferEntity{
		ItemID:       req.ItemID,
		FromBranchID: req.FromBranchID,
		ToBranchID:   req.ToBranchID,
		Quantity:     req.Quantity,
		Status:       constant.TransferStatusDelivered,
		Notes:        req.Notes,
		RequestDate:  now,
		DeliveryDate: &now,
	}

	// The tracking number column is unique; regenerate on the unlikely clash.
	var transferID uint64
	for attempt := 0; ; attempt++ {
		entity.TrackingNumber = generateTrackingNumber()
		transferID, err = s.transferRepo.InsertTx(ctx, tx, entity)
		if err == nil {
			break
		}
		if mysqlerr.IsDuplicate(err) && attempt < 2 {
			continue
		}
		logger.Error("[Transfer] insert transfer", zap.String("error", err.Error()))
		return nil, s.mapTxError(err)
	}
	entity.ID = transferID

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Transfer] commit tx", zap.String("error", err.Error()))
		return nil, s.mapTxError(err)
	}
	committed = true

	userID, _ := utilcontext.GetUserID(ctx)
	logger.Info("[Transfer] delivered",
		zap.String("tracking_number", entity.TrackingNumber),
		zap.Uint64("item_id", item.ID),
		zap.Uint64("to_branch_id", toBranch.ID),
		zap.Int64("quantity", req.Quantity),
		zap.Uint64("user_id", userID))

	s.invalidateCaches(ctx)
	if sourceRemaining <= sourceReorderPoint {
		s.publishAlert(item, req.FromBranchID, sourceRemaining, sourceReorderPoint)
	}

	row := &model.TransferRow{
		TransferEntity: *entity,
		ItemCode:       item.Code,
		ItemName:       item.Name,
		ToBranchCode:   toBranch.Code,
		ToBranchName:   toBranch.Name,
	}
	if fromBranch != nil {
		row.FromBranchCode = &fromBranch.Code
		row.FromBranchName = &fromBranch.Name
	}
	return row, nil
}

func (s *transferAppImpl) History(ctx context.Context, filter *model.TransferHistoryFilter) ([]model.TransferRow, error) {
	rows, err := s.transferRepo.History(ctx, filter)
	if err != nil {
		logger.Error("[History] query transfers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

// Reconcile replays the delivered transfer log for a branch and diffs it
// against the ledger. The ledger stays canonical; this report only flags
// drift, which is expected whenever direct stock updates bypassed transfers.
func (s *transferAppImpl) Reconcile(ctx context.Context, branchID uint64) (*model.ReconciliationReport, error) {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		logger.Error("[Reconcile] get branch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if branch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	ledger, err := s.inventoryRepo.GetByBranch(ctx, branchID, false)
	if err != nil {
		logger.Error("[Reconcile] read ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	replayed, err := s.transferRepo.NetDeliveredByBranch(ctx, branchID)
	if err != nil {
		logger.Error("[Reconcile] replay transfers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	netByItem := make(map[uint64]model.TransferNetQuantity, len(replayed))
	for _, n := range replayed {
		netByItem[n.ItemID] = n
	}

	report := &model.ReconciliationReport{
		BranchID:    branchID,
		CheckedAt:   time.Now(),
		RowsChecked: len(ledger),
		Drifted:     make([]model.ReconciliationEntry, 0),
	}

	seen := make(map[uint64]bool, len(ledger))
	for _, row := range ledger {
		seen[row.ItemID] = true
		net := netByItem[row.ItemID].Net
		if row.CurrentStock != net {
			report.Drifted = append(report.Drifted, model.ReconciliationEntry{
				ItemID:      row.ItemID,
				ItemCode:    row.ItemCode,
				LedgerStock: row.CurrentStock,
				ReplayedNet: net,
				Drift:       row.CurrentStock - net,
			})
		}
	}
	// Items with transfer history but no ledger row are drift too.
	for itemID, n := range netByItem {
		if !seen[itemID] && n.Net != 0 {
			report.Drifted = append(report.Drifted, model.ReconciliationEntry{
				ItemID:      itemID,
				ItemCode:    n.ItemCode,
				LedgerStock: 0,
				ReplayedNet: n.Net,
				Drift:       -n.Net,
			})
		}
	}

	report.InSync = len(report.Drifted) == 0
	return report, nil
}

func (s *transferAppImpl) mapTxError(err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.SetCustomError(constant.ErrTimeout)
	case mysqlerr.IsLockConflict(err):
		return errors.SetCustomError(constant.ErrConflict)
	}
	return errors.SetCustomError(constant.ErrInternal)
}

func (s *transferAppImpl) invalidateCaches(ctx context.Context) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.Delete(ctx, constant.CacheKeyInventorySummary, constant.CacheKeyDashboard); err != nil {
		logger.Warn("[Transfer] invalidate caches", zap.String("error", err.Error()))
	}
}

func (s *transferAppImpl) publishAlert(item *model.ItemEntity, branchID *uint64, remaining, reorderPoint int64) {
	if s.publisher == nil {
		return
	}

	status := string(constant.StockStatusLow)
	if remaining <= 0 {
		status = string(constant.StockStatusOutOfStock)
	}
	msg := rabbitmq.StockAlertMessage{
		ItemID:       item.ID,
		ItemCode:     item.Code,
		CurrentStock: remaining,
		ReorderPoint: reorderPoint,
		Status:       status,
		OccurredAt:   time.Now(),
	}
	if branchID != nil {
		msg.BranchID = *branchID
	}
	if err := s.publisher.PublishStockAlert(msg); err != nil {
		logger.Error("[Transfer] publish stock alert", zap.String("error", err.Error()))
	}
}

func generateTrackingNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := fmt.Sprintf("%03d", rand.Intn(1000))
	return strings.ToUpper("TRF" + ts + suffix)
}
