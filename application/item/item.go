package item

import (
	"context"
	"sort"

	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	itemrepo "github.com/ramadhanif/bakery-inventory/repository/item"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"github.com/ramadhanif/bakery-inventory/utils/mysqlerr"
	validatorx "github.com/ramadhanif/bakery-inventory/utils/validator"
	"go.uber.org/zap"
)

type ItemApp interface {
	Create(ctx context.Context, req *model.CreateItemRequest) (*model.ItemEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error)
	List(ctx context.Context, filter *model.ItemFilter) (*model.ItemListResponse, error)
	Update(ctx context.Context, id uint64, req *model.UpdateItemRequest) (*model.ItemEntity, error)
	Delete(ctx context.Context, id uint64) error
	Categories(ctx context.Context) ([]string, error)
	ResetAllStocks(ctx context.Context) (*model.ResetStocksResponse, error)
}

type itemAppImpl struct {
	itemRepo itemrepo.ItemRepository
}

func NewItemApp(itemRepo itemrepo.ItemRepository) ItemApp {
	return &itemAppImpl{itemRepo: itemRepo}
}

func (s *itemAppImpl) Create(ctx context.Context, req *model.CreateItemRequest) (*model.ItemEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.ValidationMessage(err))
	}

	code := model.NormalizeCode(req.Code)
	existing, err := s.itemRepo.GetByCode(ctx, code)
	if err != nil {
		logger.Error("[CreateItem] check code", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateCode)
	}

	entity := &model.ItemEntity{
		Code:        code,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       model.RoundPrice(req.Price),
		Stock:       req.Stock,
		IsActive:    true,
	}

	id, err := s.itemRepo.Create(ctx, entity)
	if err != nil {
		// Races with a concurrent create on the same code land here.
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
		logger.Error("[CreateItem] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.itemRepo.GetByID(ctx, id)
	if err != nil || created == nil {
		logger.Error("[CreateItem] read back", zap.Uint64("id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *itemAppImpl) GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetItem] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return item, nil
}

func (s *itemAppImpl) List(ctx context.Context, filter *model.ItemFilter) (*model.ItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	items, total, err := s.itemRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListItems] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ItemListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *itemAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateItemRequest) (*model.ItemEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.ValidationMessage(err))
	}

	if req.Code != nil {
		code := model.NormalizeCode(*req.Code)
		req.Code = &code
		other, err := s.itemRepo.GetByCodeExcluding(ctx, code, id)
		if err != nil {
			logger.Error("[UpdateItem] check code", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
	}
	if req.Price != nil {
		price := model.RoundPrice(*req.Price)
		req.Price = &price
	}

	if _, err := s.itemRepo.Update(ctx, id, req); err != nil {
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
		logger.Error("[UpdateItem] write", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateItem] read back", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// Zero rows touched is fine when the payload matched the stored row, but
	// a missing row is not.
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return item, nil
}

func (s *itemAppImpl) Delete(ctx context.Context, id uint64) error {
	affected, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		// Restricting FKs keep items with ledger rows or transfer history.
		if mysqlerr.IsForeignKeyViolation(err) {
			return errors.SetCustomError(constant.ErrInUse)
		}
		logger.Error("[DeleteItem] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// Categories merges the built-in category list with anything already stored,
// so legacy rows with free-form categories still show up in filters.
func (s *itemAppImpl) Categories(ctx context.Context) ([]string, error) {
	stored, err := s.itemRepo.Categories(ctx)
	if err != nil {
		logger.Error("[ItemCategories] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	seen := make(map[string]bool, len(constant.ItemCategories)+len(stored))
	merged := make([]string, 0, len(constant.ItemCategories)+len(stored))
	for _, c := range constant.ItemCategories {
		if !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}
	for _, c := range stored {
		if c != "" && !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}
	sort.Strings(merged)
	return merged, nil
}

func (s *itemAppImpl) ResetAllStocks(ctx context.Context) (*model.ResetStocksResponse, error) {
	modified, err := s.itemRepo.ResetAllStocks(ctx)
	if err != nil {
		logger.Error("[ResetAllStocks] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ResetStocksResponse{ModifiedCount: modified}, nil
}
