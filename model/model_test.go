package model_test

import (
	"testing"

	"github.com/ramadhanif/bakery-inventory/constant"
	"github.com/ramadhanif/bakery-inventory/model"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cro", "CRO"},
		{"  br-01 ", "BR-01"},
		{"CRO", "CRO"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := model.NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// normalizing twice must not change the result
		if got := model.NormalizeCode(model.NormalizeCode(tt.in)); got != tt.want {
			t.Errorf("NormalizeCode is not idempotent for %q", tt.in)
		}
	}
}

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.5004, 3.5},
		{3.555, 3.56},
		{0, 0},
		{10.999, 11},
	}
	for _, tt := range tests {
		if got := model.RoundPrice(tt.in); got != tt.want {
			t.Errorf("RoundPrice(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInventoryEntry_StockStatus(t *testing.T) {
	tests := []struct {
		name    string
		stock   int64
		reorder int64
		max     int64
		want    constant.StockStatus
	}{
		{"empty row is out of stock", 0, 10, 100, constant.StockStatusOutOfStock},
		{"at reorder point is low", 10, 10, 100, constant.StockStatusLow},
		{"below reorder point is low", 5, 10, 100, constant.StockStatusLow},
		{"at max level is overstocked", 100, 10, 100, constant.StockStatusOverstocked},
		{"in between is normal", 50, 10, 100, constant.StockStatusNormal},
		// an empty row whose reorder point is zero is still out of stock
		{"zero stock beats zero reorder point", 0, 0, 100, constant.StockStatusOutOfStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.InventoryEntry{
				CurrentStock:  tt.stock,
				ReorderPoint:  tt.reorder,
				MaxStockLevel: tt.max,
			}
			if got := e.StockStatus(); got != tt.want {
				t.Fatalf("StockStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}
