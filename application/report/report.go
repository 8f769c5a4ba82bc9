package report

import (
	"context"
	"encoding/json"

	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	branchrepo "github.com/ramadhanif/bakery-inventory/repository/branch"
	inventoryrepo "github.com/ramadhanif/bakery-inventory/repository/inventory"
	itemrepo "github.com/ramadhanif/bakery-inventory/repository/item"
	redisrepo "github.com/ramadhanif/bakery-inventory/repository/redis"
	transferrepo "github.com/ramadhanif/bakery-inventory/repository/transfer"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"go.uber.org/zap"
)

const recentTransferLimit = 10

type ReportApp interface {
	Overview(ctx context.Context) (*model.DashboardResponse, error)
}

type reportAppImpl struct {
	config        *config.Config
	itemRepo      itemrepo.ItemRepository
	branchRepo    branchrepo.BranchRepository
	inventoryRepo inventoryrepo.InventoryRepository
	transferRepo  transferrepo.TransferRepository
	redisRepo     redisrepo.Repository
}

func NewReportApp(
	config *config.Config,
	itemRepo itemrepo.ItemRepository,
	branchRepo branchrepo.BranchRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	transferRepo transferrepo.TransferRepository,
	redisRepo redisrepo.Repository,
) ReportApp {
	return &reportAppImpl{
		config:        config,
		itemRepo:      itemRepo,
		branchRepo:    branchRepo,
		inventoryRepo: inventoryRepo,
		transferRepo:  transferRepo,
		redisRepo:     redisRepo,
	}
}

// Overview assembles the dashboard. The aggregate queries are the heaviest
// reads in the system, so the whole response is cached and invalidated by
// every stock write.
func (s *reportAppImpl) Overview(ctx context.Context) (*model.DashboardResponse, error) {
	if s.redisRepo != nil {
		cached, err := s.redisRepo.Get(ctx, constant.CacheKeyDashboard)
		if err == nil && cached != "" {
			var resp model.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	totalItems, err := s.itemRepo.CountActive(ctx)
	if err != nil {
		logger.Error("[Overview] count items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalBranches, err := s.branchRepo.CountActive(ctx)
	if err != nil {
		logger.Error("[Overview] count branches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	summary, err := s.inventoryRepo.Summary(ctx)
	if err != nil {
		logger.Error("[Overview] ledger summary", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	categories, err := s.inventoryRepo.CategoryBreakdown(ctx)
	if err != nil {
		logger.Error("[Overview] category breakdown", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	performance, err := s.inventoryRepo.BranchPerformance(ctx)
	if err != nil {
		logger.Error("[Overview] branch performance", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	recent, err := s.transferRepo.Recent(ctx, recentTransferLimit)
	if err != nil {
		logger.Error("[Overview] recent transfers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.DashboardResponse{
		Overview: model.DashboardOverview{
			TotalItems:    totalItems,
			TotalBranches: totalBranches,
			TotalStock:    summary.TotalStock,
			TotalValue:    summary.TotalValue,
			LowStockItems: summary.LowStockItems,
		},
		CategoryDistribution: categories,
		BranchPerformance:    performance,
		RecentTransfers:      recent,
	}

	if s.redisRepo != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.redisRepo.SetWithTTL(ctx, constant.CacheKeyDashboard, string(raw), s.config.Cache.SummaryTTL); err != nil {
				logger.Warn("[Overview] cache write", zap.String("error", err.Error()))
			}
		}
	}
	return resp, nil
}
