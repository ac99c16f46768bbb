package repository

import (
	"context"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	spotsTable = "parking_spots"

	// 8 columns per row keeps a chunk well under the 65535 bind parameter limit.
	spotBatchSize = 500
)

var spotColumns = []string{"id", "lot_id", "label", "status", "floor", "section", "last_updated", "created_at"}

type SpotRepository struct {
	db db.DBTX
}

func NewSpotRepository(dbtx db.DBTX) *SpotRepository {
	return &SpotRepository{db: dbtx}
}

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) error {
	return r.CreateBatch(ctx, []*spot.Spot{s})
}

// CreateBatch is atomic only when the repository is bound to a transaction.
func (r *SpotRepository) CreateBatch(ctx context.Context, spots []*spot.Spot) error {
	for start := 0; start < len(spots); start += spotBatchSize {
		end := min(start+spotBatchSize, len(spots))

		q := db.Builder.Insert(spotsTable).Columns(spotColumns...)
		for _, s := range spots[start:end] {
			q = q.Values(s.ID(), s.LotID(), s.Label().String(), s.Status().String(),
				pgconv.StringPtrToPgtype(s.Floor()), pgconv.StringPtrToPgtype(s.Section()), s.LastUpdated(), s.CreatedAt())
		}

		sql, args, err := q.ToSql()
		if err != nil {
			return infra.WrapRepoErr("failed to build spot insert", err)
		}
		if _, err := r.db.Exec(ctx, sql, args...); err != nil {
			return wrapPgErr("failed to create parking spots", err)
		}
	}
	return nil
}

func (r *SpotRepository) UpdateStatus(ctx context.Context, s *spot.Spot) error {
	sql, args, err := db.Builder.Update(spotsTable).
		Set("status", s.Status().String()).
		Set("last_updated", s.LastUpdated()).
		Where(squirrel.Eq{"id": s.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build spot update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapPgErr("failed to update parking spot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := db.Builder.Delete(spotsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build spot delete", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapPgErr("failed to delete parking spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) DeleteByLot(ctx context.Context, lotID uuid.UUID) (int64, error) {
	sql, args, err := db.Builder.Delete(spotsTable).Where(squirrel.Eq{"lot_id": lotID}).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build spot delete", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, wrapPgErr("failed to delete parking spots of lot", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SpotRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM "+spotsTable); err != nil {
		return wrapPgErr("failed to delete parking spots", err)
	}
	return nil
}
