package readstore

import (
	"context"
	"time"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/pgconv"
	"smart-parking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type lotRecord struct {
	ID             uuid.UUID   `db:"id"`
	Name           string      `db:"name"`
	Location       string      `db:"location"`
	TotalCapacity  int         `db:"total_capacity"`
	Description    pgtype.Text `db:"description"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
	AvailableCount int         `db:"available_count"`
}

type LotReadStore struct {
	db db.DBTX
}

func NewLotReadStore(dbtx db.DBTX) *LotReadStore {
	return &LotReadStore{db: dbtx}
}

// Available counts are aggregated from the spots table on every read.
func lotSelect() squirrel.SelectBuilder {
	return db.Builder.Select(
		"l.id", "l.name", "l.location", "l.total_capacity", "l.description", "l.created_at", "l.updated_at",
		"COUNT(s.id) FILTER (WHERE s.status = '"+spot.StatusAvailable.String()+"') AS available_count",
	).
		From("parking_lots l").
		LeftJoin("parking_spots s ON s.lot_id = l.id").
		GroupBy("l.id")
}

func (r *LotReadStore) List(ctx context.Context) ([]*queries.LotRow, error) {
	sql, args, err := lotSelect().OrderBy("l.created_at", "l.id").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build lot list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking lots", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[lotRecord])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan parking lots", err)
	}

	out := make([]*queries.LotRow, 0, len(records))
	for _, rec := range records {
		out = append(out, toLotRow(rec))
	}
	return out, nil
}

func (r *LotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LotRow, error) {
	sql, args, err := lotSelect().Where(squirrel.Eq{"l.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build lot query", err)
	}

	var rec lotRecord
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.Name, &rec.Location, &rec.TotalCapacity, &rec.Description,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.AvailableCount,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking lot", err)
	}
	return toLotRow(&rec), nil
}

func (r *LotReadStore) IDs(ctx context.Context) ([]uuid.UUID, error) {
	sql, args, err := db.Builder.Select("id").From("parking_lots").OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build lot id query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking lot ids", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan parking lot ids", err)
	}
	return ids, nil
}

func toLotRow(rec *lotRecord) *queries.LotRow {
	return &queries.LotRow{
		ID:             rec.ID,
		Name:           rec.Name,
		Location:       rec.Location,
		TotalCapacity:  rec.TotalCapacity,
		Description:    pgconv.StringPtrFromPgtype(rec.Description),
		AvailableCount: rec.AvailableCount,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}
