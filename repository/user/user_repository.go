package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/ramadhanif/bakery-inventory/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Create(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	q := "SELECT id, name, email, phone, password_hash, created_at, updated_at FROM user WHERE "
	var arg interface{}
	switch {
	case filter.ID != 0:
		q += "id = ?"
		arg = filter.ID
	case filter.Email != "":
		q += "email = ?"
		arg = filter.Email
	case filter.Phone != "":
		q += "phone = ?"
		arg = filter.Phone
	default:
		return nil, nil
	}

	var u model.UserEntity
	err := r.conn.GetContext(ctx, &u, q, arg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SQL) Create(ctx context.Context, user *model.UserEntity) (*model.UserEntity, error) {
	q := "INSERT INTO user (name, email, phone, password_hash) VALUES (?, ?, ?, ?)"
	res, err := r.conn.ExecContext(ctx, q, user.Name, user.Email, user.Phone, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	user.ID = uint64(id)
	return user, nil
}
