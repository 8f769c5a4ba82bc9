package model

import (
	"math"
	"strings"
	"time"
)

// ItemEntity represents the item table. Stock is the central bakery counter;
// per-branch quantities live in branch_inventory.
type ItemEntity struct {
	ID          uint64     `db:"id" json:"id"`
	Code        string     `db:"code" json:"code"`
	Name        string     `db:"name" json:"name"`
	Category    string     `db:"category" json:"category"`
	Description string     `db:"description" json:"description,omitempty"`
	Price       float64    `db:"price" json:"price"`
	Stock       int64      `db:"stock" json:"stock"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateItemRequest struct {
	Code        string  `json:"code" validate:"required,max=10"`
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,oneof=Breads Pastries Cakes Cookies Others"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int64   `json:"stock" validate:"gte=0"`
}

// UpdateItemRequest carries partial fields; nil means leave unchanged.
type UpdateItemRequest struct {
	Code        *string  `json:"code" validate:"omitempty,max=10"`
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Breads Pastries Cakes Cookies Others"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

type ItemFilter struct {
	Search   string
	Category string
	Active   *bool
	Page     int
	PerPage  int
}

type ItemListResponse struct {
	Items      []ItemEntity `json:"items"`
	TotalCount int64        `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

type ResetStocksResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}

// NormalizeCode trims and uppercases an item or branch code. Idempotent.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RoundPrice rounds to 2 decimal places.
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
