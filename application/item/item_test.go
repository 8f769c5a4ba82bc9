package item_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	appitem "github.com/ramadhanif/bakery-inventory/application/item"
	"github.com/ramadhanif/bakery-inventory/constant"
	itemmocks "github.com/ramadhanif/bakery-inventory/mocks/repository/item"
	"github.com/ramadhanif/bakery-inventory/model"
	cerr "github.com/ramadhanif/bakery-inventory/utils/errors"
	"github.com/stretchr/testify/mock"
)

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

func TestItemApp_Create(t *testing.T) {
	t.Run("success: code is normalized and price rounded", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)
		itemRepo.On("GetByCode", mock.Anything, "CRO").Return(nil, nil).Once()
		itemRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.ItemEntity) bool {
			return e.Code == "CRO" && e.Price == 3.5 && e.IsActive
		})).Return(uint64(1), nil).Once()
		itemRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ItemEntity{
			ID: 1, Code: "CRO", Name: "Croissant", Category: "Pastries", Price: 3.5,
		}, nil).Once()

		app := appitem.NewItemApp(itemRepo)

		got, err := app.Create(context.Background(), &model.CreateItemRequest{
			Code:     " cro ",
			Name:     "Croissant",
			Category: "Pastries",
			Price:    3.5004,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.Code != "CRO" {
			t.Fatalf("code = %s", got.Code)
		}
	})

	t.Run("error: duplicate code", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)
		itemRepo.On("GetByCode", mock.Anything, "CRO").Return(&model.ItemEntity{ID: 9, Code: "CRO"}, nil).Once()

		app := appitem.NewItemApp(itemRepo)

		_, err := app.Create(context.Background(), &model.CreateItemRequest{
			Code:     "CRO",
			Name:     "Croissant",
			Category: "Pastries",
		})
		assertErrCode(t, err, constant.ErrDuplicateCode)
	})

	t.Run("error: invalid category", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)

		app := appitem.NewItemApp(itemRepo)

		_, err := app.Create(context.Background(), &model.CreateItemRequest{
			Code:     "CRO",
			Name:     "Croissant",
			Category: "Sushi",
		})
		assertErrCode(t, err, constant.ErrValidation)
	})
}

func TestItemApp_Update(t *testing.T) {
	t.Run("error: new code belongs to another item", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)
		code := "BAG"
		itemRepo.On("GetByCodeExcluding", mock.Anything, "BAG", uint64(1)).Return(&model.ItemEntity{ID: 2, Code: "BAG"}, nil).Once()

		app := appitem.NewItemApp(itemRepo)

		_, err := app.Update(context.Background(), 1, &model.UpdateItemRequest{Code: &code})
		assertErrCode(t, err, constant.ErrDuplicateCode)
	})

	t.Run("error: item missing", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)
		name := "Baguette"
		itemRepo.On("Update", mock.Anything, uint64(99), mock.Anything).Return(int64(0), nil).Once()
		itemRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appitem.NewItemApp(itemRepo)

		_, err := app.Update(context.Background(), 99, &model.UpdateItemRequest{Name: &name})
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestItemApp_Delete(t *testing.T) {
	t.Run("error: not found", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)
		itemRepo.On("Delete", mock.Anything, uint64(99)).Return(int64(0), nil).Once()

		app := appitem.NewItemApp(itemRepo)

		err := app.Delete(context.Background(), 99)
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: item still referenced by ledger or transfers", func(t *testing.T) {
		itemRepo := itemmocks.NewItemRepository(t)
		itemRepo.On("Delete", mock.Anything, uint64(4)).
			Return(int64(0), &mysql.MySQLError{Number: 1451, Message: "a foreign key constraint fails"}).Once()

		app := appitem.NewItemApp(itemRepo)

		err := app.Delete(context.Background(), 4)
		assertErrCode(t, err, constant.ErrInUse)
	})
}

func TestItemApp_Categories(t *testing.T) {
	itemRepo := itemmocks.NewItemRepository(t)
	itemRepo.On("Categories", mock.Anything).Return([]string{"Breads", "Seasonal"}, nil).Once()

	app := appitem.NewItemApp(itemRepo)

	got, err := app.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"Breads", "Cakes", "Cookies", "Others", "Pastries", "Seasonal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
}

func TestItemApp_ResetAllStocks(t *testing.T) {
	itemRepo := itemmocks.NewItemRepository(t)
	itemRepo.On("ResetAllStocks", mock.Anything).Return(int64(3), nil).Once()

	app := appitem.NewItemApp(itemRepo)

	got, err := app.ResetAllStocks(context.Background())
	if err != nil {
		t.Fatalf("ResetAllStocks() error = %v", err)
	}
	if got.ModifiedCount != 3 {
		t.Fatalf("modified count = %d, want 3", got.ModifiedCount)
	}
}
