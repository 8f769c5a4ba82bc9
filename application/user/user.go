package user

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
	redisrepo "github.com/ramadhanif/bakery-inventory/repository/redis"
	userrepo "github.com/ramadhanif/bakery-inventory/repository/user"
	"github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/ramadhanif/bakery-inventory/utils/logger"
	validatorx "github.com/ramadhanif/bakery-inventory/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (uint64, error)
}

type userAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &userAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *userAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.ValidationMessage(err))
	}

	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] check email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		existing, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
		if err != nil {
			logger.Error("[Register] check phone", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] hash password", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		logger.Error("[Register] insert user", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  created.Name,
		Email: created.Email,
	}, nil
}

func (s *userAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.ValidationMessage(err))
	}

	filter := &model.UserFilter{Phone: req.Identifier}
	if strings.Contains(req.Identifier, "@") {
		filter = &model.UserFilter{Email: strings.ToLower(strings.TrimSpace(req.Identifier))}
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] lookup user", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	sessionID := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		logger.Error("[Login] sign token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, sessionID, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] store session", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// Logout drops the session referenced by the token's jti. The JWT itself
// stays syntactically valid until exp, but ValidateToken rejects it once the
// session is gone.
func (s *userAppImpl) Logout(ctx context.Context, token string) error {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.SetCustomError(constant.ErrUnauthorize)
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] delete session", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ValidateToken verifies the JWT signature and expiry, then requires the
// session referenced by the token's jti to still exist. Logging out or an
// expired session invalidates the token even before its exp.
func (s *userAppImpl) ValidateToken(ctx context.Context, token string) (uint64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.SetCustomError(constant.ErrUnauthorize)
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		logger.Error("[ValidateToken] read session", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if userID == 0 {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return userID, nil
}
