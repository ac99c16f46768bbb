package repository

import (
	"context"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const lotsTable = "parking_lots"

type LotRepository struct {
	db db.DBTX
}

func NewLotRepository(dbtx db.DBTX) *LotRepository {
	return &LotRepository{db: dbtx}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) error {
	sql, args, err := db.Builder.Insert(lotsTable).
		Columns("id", "name", "location", "total_capacity", "description", "created_at", "updated_at").
		Values(l.ID(), l.Name(), l.Location(), l.TotalCapacity(), pgconv.StringPtrToPgtype(l.Description()), l.CreatedAt(), l.UpdatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build lot insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return wrapPgErr("failed to create parking lot", err)
	}
	return nil
}

func (r *LotRepository) Update(ctx context.Context, l *lot.Lot) error {
	sql, args, err := db.Builder.Update(lotsTable).
		Set("name", l.Name()).
		Set("location", l.Location()).
		Set("total_capacity", l.TotalCapacity()).
		Set("description", pgconv.StringPtrToPgtype(l.Description())).
		Set("updated_at", l.UpdatedAt()).
		Where(squirrel.Eq{"id": l.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build lot update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapPgErr("failed to update parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for any spots still attached.
func (r *LotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := db.Builder.Delete(lotsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build lot delete", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapPgErr("failed to delete parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM "+lotsTable); err != nil {
		return wrapPgErr("failed to delete parking lots", err)
	}
	return nil
}
