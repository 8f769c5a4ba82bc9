package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/ramadhanif/bakery-inventory/application/user"
	"github.com/ramadhanif/bakery-inventory/cmd/config"
	"github.com/ramadhanif/bakery-inventory/constant"
	redismocks "github.com/ramadhanif/bakery-inventory/mocks/repository/redis"
	usermocks "github.com/ramadhanif/bakery-inventory/mocks/repository/user"
	"github.com/ramadhanif/bakery-inventory/model"
	cerr "github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestUserApp_Register(t *testing.T) {
	t.Run("error: email already registered", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "baker@example.com"}).Return(&model.UserEntity{ID: 1}, nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		_, err := app.Register(context.Background(), &model.RegisterRequest{
			Name:     "Baker",
			Email:    "baker@example.com",
			Phone:    "555-0101",
			Password: "secret1",
		})
		assertErrCode(t, err, constant.ErrCredentialExists)
	})

	t.Run("error: password too short", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		_, err := app.Register(context.Background(), &model.RegisterRequest{
			Name:     "Baker",
			Email:    "baker@example.com",
			Phone:    "555-0101",
			Password: "ab",
		})
		assertErrCode(t, err, constant.ErrValidation)
	})
}

func TestUserApp_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	baker := &model.UserEntity{
		ID:           1,
		Name:         "Baker",
		Email:        "baker@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success: email identifier yields token and session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "baker@example.com"}).Return(baker, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		got, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "Baker@Example.com",
			Password:   "secret1",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if got.Token == "" || got.Email != "baker@example.com" {
			t.Fatalf("response = %+v", got)
		}
	})

	t.Run("error: wrong password", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "baker@example.com"}).Return(baker, nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		_, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "baker@example.com",
			Password:   "wrong",
		})
		assertErrCode(t, err, constant.ErrInvalidPassword)
	})

	t.Run("error: unknown identifier", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "555-9999"}).Return(nil, nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		_, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "555-9999",
			Password:   "secret1",
		})
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestUserApp_ValidateToken(t *testing.T) {
	t.Run("round trip: login token validates to the user id", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
		if err != nil {
			t.Fatal(err)
		}
		baker := &model.UserEntity{ID: 1, Email: "baker@example.com", PasswordHash: string(hash)}

		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(baker, nil).Once()

		var sessionID string
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Run(func(args mock.Arguments) { sessionID = args.String(1) }).
			Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		res, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "baker@example.com",
			Password:   "secret1",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.On("GetSession", mock.Anything, sessionID).Return(uint64(1), nil).Once()

		userID, err := app.ValidateToken(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 1 {
			t.Fatalf("userID = %d, want 1", userID)
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		_, err := app.ValidateToken(context.Background(), "not-a-token")
		assertErrCode(t, err, constant.ErrUnauthorize)
	})

	t.Run("error: session revoked", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
		if err != nil {
			t.Fatal(err)
		}
		baker := &model.UserEntity{ID: 1, Email: "baker@example.com", PasswordHash: string(hash)}

		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(baker, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		res, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "baker@example.com",
			Password:   "secret1",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(0), nil).Once()

		_, err = app.ValidateToken(context.Background(), res.Token)
		assertErrCode(t, err, constant.ErrUnauthorize)
	})
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("deletes the session behind the token", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
		if err != nil {
			t.Fatal(err)
		}
		baker := &model.UserEntity{ID: 1, Email: "baker@example.com", PasswordHash: string(hash)}

		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(baker, nil).Once()

		var sessionID string
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Run(func(args mock.Arguments) { sessionID = args.String(1) }).
			Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		res, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "baker@example.com",
			Password:   "secret1",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.On("DeleteSession", mock.Anything, sessionID).Return(nil).Once()

		if err := app.Logout(context.Background(), res.Token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

		err := app.Logout(context.Background(), "not-a-token")
		assertErrCode(t, err, constant.ErrUnauthorize)
	})
}
