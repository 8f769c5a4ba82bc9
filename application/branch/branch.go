package branch

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	branchrepo "github.com/ramadhanif/bakery-inventory/repository/branch"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	"github.com/ramadhanif/bakery-inventory/utils/mysqlerr"
	validatorx "github.com/ramadhanif/bakery-inventory/utils/validator"
	"go.uber.org/zap"
)

type BranchApp interface {
	Create(ctx context.Context, req *model.CreateBranchRequest) (*model.BranchEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.BranchEntity, error)
	List(ctx context.Context, filter *model.BranchFilter) (*model.BranchListResponse, error)
	Update(ctx context.Context, id uint64, req *model.UpdateBranchRequest) (*model.BranchEntity, error)
	Delete(ctx context.Context, id uint64) error
	UpdateStatus(ctx context.Context, id uint64, status string) (*model.BranchEntity, error)
	Cities(ctx context.Context) ([]string, error)
}

type branchAppImpl struct {
	branchRepo branchrepo.BranchRepository
}

func NewBranchApp(branchRepo branchrepo.BranchRepository) BranchApp {
	return &branchAppImpl{branchRepo: branchRepo}
}

func (s *branchAppImpl) Create(ctx context.Context, req *model.CreateBranchRequest) (*model.BranchEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.ValidationMessage(err))
	}

	var code string
	if req.Code != "" {
		code = model.NormalizeCode(req.Code)
		if code == constant.MainBranchCode {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
		exists, err := s.branchRepo.CodeExists(ctx, code)
		if err != nil {
			logger.Error("[CreateBranch] check code", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if exists {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
	} else {
		generated, err := s.generateCode(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		code = generated
	}

	country := req.Country
	if country == "" {
		country = "USA"
	}

	entity := &model.BranchEntity{
		Code:        code,
		Name:        req.Name,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     country,
		Phone:       req.Phone,
		Email:       req.Email,
		ManagerName: req.ManagerName,
		Status:      string(constant.BranchStatusActive),
		Description: req.Description,
	}

	id, err := s.branchRepo.Create(ctx, entity)
	if err != nil {
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateCode)
		}
		logger.Error("[CreateBranch] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.branchRepo.GetByID(ctx, id)
	if err != nil || created == nil {
		logger.Error("[CreateBranch] read back", zap.Uint64("id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

// generateCode derives a code from the branch name's first letters plus a
// random numeric suffix, retrying on the rare collision.
func (s *branchAppImpl) generateCode(ctx context.Context, name string) (string, error) {
	prefix := make([]rune, 0, 3)
	for _, r := range name {
		if unicode.IsLetter(r) {
			prefix = append(prefix, unicode.ToUpper(r))
		}
		if len(prefix) == 3 {
			break
		}
	}
	if len(prefix) == 0 {
		prefix = []rune("BRN")
	}

	for attempt := 0; attempt < 5; attempt++ {
		code := fmt.Sprintf("%s%03d", string(prefix), rand.Intn(1000))
		if code == constant.MainBranchCode {
			continue
		}
		exists, err := s.branchRepo.CodeExists(ctx, code)
		if err != nil {
			logger.Error("[CreateBranch] check generated code", zap.String("error", err.Error()))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.SetCustomError(constant.ErrDuplicateCode)
}

func (s *branchAppImpl) GetByID(ctx context.Context, id uint64) (*model.BranchEntity, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetBranch] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if branch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return branch, nil
}

func (s *branchAppImpl) List(ctx context.Context, filter *model.BranchFilter) (*model.BranchListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}
	if filter.Status != "" && !constant.ValidBranchStatus(filter.Status) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	branches, total, err := s.branchRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListBranches] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.BranchListResponse{
		Branches:   branches,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *branchAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateBranchRequest) (*model.BranchEntity, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.ValidationMessage(err))
	}

	if _, err := s.branchRepo.Update(ctx, id, req); err != nil {
		logger.Error("[UpdateBranch] write", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateBranch] read back", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if branch == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return branch, nil
}

func (s *branchAppImpl) Delete(ctx context.Context, id uint64) error {
	affected, err := s.branchRepo.Delete(ctx, id)
	if err != nil {
		// Restricting FKs keep branches with ledger rows or transfer history.
		if mysqlerr.IsForeignKeyViolation(err) {
			return errors.SetCustomError(constant.ErrInUse)
		}
		logger.Error("[DeleteBranch] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *branchAppImpl) UpdateStatus(ctx context.Context, id uint64, status string) (*model.BranchEntity, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !constant.ValidBranchStatus(status) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	affected, err := s.branchRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Error("[UpdateBranchStatus] write", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		// Could be a missing branch or a no-op write; disambiguate.
		existing, err := s.branchRepo.GetByID(ctx, id)
		if err != nil {
			logger.Error("[UpdateBranchStatus] read back", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		return existing, nil
	}

	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil || branch == nil {
		logger.Error("[UpdateBranchStatus] read back", zap.Uint64("id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return branch, nil
}

func (s *branchAppImpl) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.branchRepo.ListCities(ctx)
	if err != nil {
		logger.Error("[BranchCities] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return cities, nil
}
