package repository

import (
	"context"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
)

const usersTable = "users"

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	sql, args, err := db.Builder.Insert(usersTable).
		Columns("id", "name", "email", "password_hash", "role", "created_at").
		Values(u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.CreatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM "+usersTable); err != nil {
		return wrapPgErr("failed to delete users", err)
	}
	return nil
}
