package branch

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ramadhanif/bakery-inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BranchRepository interface {
	Create(ctx context.Context, branch *model.BranchEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.BranchEntity, error)
	GetByCode(ctx context.Context, code string) (*model.BranchEntity, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter *model.BranchFilter) ([]model.BranchEntity, int64, error)
	Update(ctx context.Context, id uint64, req *model.UpdateBranchRequest) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (int64, error)
	ListCities(ctx context.Context) ([]string, error)
	CountActive(ctx context.Context) (int64, error)
}

func NewBranchRepository(conn *sqlx.DB) BranchRepository {
	return &SQL{conn: conn}
}

const branchColumns = "id, code, name, street, city, state, zip_code, country, phone, email, manager_name, status, description, created_at, updated_at"

func (r *SQL) Create(ctx context.Context, branch *model.BranchEntity) (uint64, error) {
	q := `INSERT INTO branch (code, name, street, city, state, zip_code, country, phone, email, manager_name, status, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.conn.ExecContext(ctx, q,
		branch.Code, branch.Name, branch.Street, branch.City, branch.State, branch.ZipCode,
		branch.Country, branch.Phone, branch.Email, branch.ManagerName, branch.Status, branch.Description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.BranchEntity, error) {
	var b model.BranchEntity
	err := r.conn.GetContext(ctx, &b, "SELECT "+branchColumns+" FROM branch WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SQL) GetByCode(ctx context.Context, code string) (*model.BranchEntity, error) {
	var b model.BranchEntity
	err := r.conn.GetContext(ctx, &b, "SELECT "+branchColumns+" FROM branch WHERE code = ?", code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SQL) CodeExists(ctx context.Context, code string) (bool, error) {
	var n int64
	if err := r.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM branch WHERE code = ?", code); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) List(ctx context.Context, filter *model.BranchFilter) ([]model.BranchEntity, int64, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if filter.Search != "" {
		where = append(where, "(name LIKE ? OR city LIKE ? OR code LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}
	if filter.Status != "" && filter.Status != "all" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.City != "" {
		where = append(where, "city = ?")
		args = append(args, filter.City)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM branch"+clause, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	q := "SELECT " + branchColumns + " FROM branch" + clause + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.conn.QueryxContext(ctx, q, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	branches := make([]model.BranchEntity, 0)
	for rows.Next() {
		var b model.BranchEntity
		if err := rows.StructScan(&b); err != nil {
			return nil, 0, err
		}
		branches = append(branches, b)
	}
	return branches, total, nil
}

func (r *SQL) Update(ctx context.Context, id uint64, req *model.UpdateBranchRequest) (int64, error) {
	set := make([]string, 0, 10)
	args := make([]interface{}, 0, 11)

	add := func(col string, v interface{}) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Street != nil {
		add("street", *req.Street)
	}
	if req.City != nil {
		add("city", *req.City)
	}
	if req.State != nil {
		add("state", *req.State)
	}
	if req.ZipCode != nil {
		add("zip_code", *req.ZipCode)
	}
	if req.Country != nil {
		add("country", *req.Country)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.ManagerName != nil {
		add("manager_name", *req.ManagerName)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if len(set) == 0 {
		return 0, nil
	}

	q := "UPDATE branch SET " + strings.Join(set, ", ") + ", updated_at = NOW() WHERE id = ?"
	res, err := r.conn.ExecContext(ctx, q, append(args, id)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM branch WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "UPDATE branch SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM branch WHERE status = 'active'"); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQL) ListCities(ctx context.Context) ([]string, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT DISTINCT city FROM branch ORDER BY city")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, nil
}
