package model

import "time"

type BranchEntity struct {
	ID          uint64     `db:"id" json:"id"`
	Code        string     `db:"code" json:"code"`
	Name        string     `db:"name" json:"name"`
	Street      string     `db:"street" json:"street,omitempty"`
	City        string     `db:"city" json:"city"`
	State       string     `db:"state" json:"state,omitempty"`
	ZipCode     string     `db:"zip_code" json:"zip_code,omitempty"`
	Country     string     `db:"country" json:"country,omitempty"`
	Phone       string     `db:"phone" json:"phone"`
	Email       string     `db:"email" json:"email,omitempty"`
	ManagerName string     `db:"manager_name" json:"manager_name,omitempty"`
	Status      string     `db:"status" json:"status"`
	Description string     `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateBranchRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Code        string `json:"code" validate:"omitempty,max=10"`
	Street      string `json:"street" validate:"max=100"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"max=100"`
	ZipCode     string `json:"zip_code" validate:"max=20"`
	Country     string `json:"country" validate:"max=100"`
	Phone       string `json:"phone" validate:"required,max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	ManagerName string `json:"manager_name" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateBranchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Street      *string `json:"street" validate:"omitempty,max=100"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	ZipCode     *string `json:"zip_code" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	ManagerName *string `json:"manager_name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type UpdateBranchStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BranchFilter struct {
	Search  string
	Status  string
	City    string
	Page    int
	PerPage int
}

type BranchListResponse struct {
	Branches   []BranchEntity `json:"branches"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
}
