package readstore

import (
	"context"

	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/pgconv"
	"smart-parking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := r.findOne(ctx, squirrel.Eq{"id": id})
	return view, err
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	return r.findOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserReadStore) findOne(ctx context.Context, where squirrel.Eq) (*queries.AuthorizedUserView, string, error) {
	sql, args, err := db.Builder.
		Select("id", "name", "email", "role", "password_hash").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user query", err)
	}

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(&view.ID, &view.Name, &view.Email, &view.Role, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return &view, hash, nil
}
