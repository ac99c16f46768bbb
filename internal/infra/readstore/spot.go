package readstore

import (
	"context"
	"time"

	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/pgconv"
	"smart-parking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type spotRecord struct {
	ID          uuid.UUID   `db:"id"`
	LotID       uuid.UUID   `db:"lot_id"`
	Label       string      `db:"label"`
	Status      string      `db:"status"`
	Floor       pgtype.Text `db:"floor"`
	Section     pgtype.Text `db:"section"`
	LastUpdated time.Time   `db:"last_updated"`
	CreatedAt   time.Time   `db:"created_at"`
}

type SpotReadStore struct {
	db db.DBTX
}

func NewSpotReadStore(dbtx db.DBTX) *SpotReadStore {
	return &SpotReadStore{db: dbtx}
}

// Labels sort byte-wise (COLLATE "C"), so A10 comes before A2.
func (r *SpotReadStore) ListByLot(ctx context.Context, lotID uuid.UUID) ([]*queries.SpotView, error) {
	sql, args, err := db.Builder.
		Select("id", "lot_id", "label", "status", "floor", "section", "last_updated", "created_at").
		From("parking_spots").
		Where(squirrel.Eq{"lot_id": lotID}).
		OrderBy(`label COLLATE "C"`).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build spot list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking spots", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[spotRecord])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan parking spots", err)
	}

	out := make([]*queries.SpotView, 0, len(records))
	for _, rec := range records {
		out = append(out, toSpotView(rec))
	}
	return out, nil
}

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotDetailView, error) {
	sql, args, err := db.Builder.
		Select("s.id", "s.lot_id", "s.label", "s.status", "s.floor", "s.section", "s.last_updated", "s.created_at",
			"l.name", "l.location").
		From("parking_spots s").
		Join("parking_lots l ON l.id = s.lot_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build spot query", err)
	}

	var (
		rec               spotRecord
		lotName, location string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.LotID, &rec.Label, &rec.Status, &rec.Floor, &rec.Section, &rec.LastUpdated, &rec.CreatedAt,
		&lotName, &location,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking spot", err)
	}

	return &queries.SpotDetailView{
		SpotView:    *toSpotView(&rec),
		LotName:     lotName,
		LotLocation: location,
	}, nil
}

func (r *SpotReadStore) LabelExists(ctx context.Context, lotID uuid.UUID, label string) (bool, error) {
	sql, args, err := db.Builder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("parking_spots").
		Where(squirrel.Eq{"lot_id": lotID, "label": label}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build label query", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check spot label", err)
	}
	return exists, nil
}

func toSpotView(rec *spotRecord) *queries.SpotView {
	return &queries.SpotView{
		ID:          rec.ID,
		LotID:       rec.LotID,
		Label:       rec.Label,
		Status:      rec.Status,
		Floor:       pgconv.StringPtrFromPgtype(rec.Floor),
		Section:     pgconv.StringPtrFromPgtype(rec.Section),
		LastUpdated: rec.LastUpdated,
		CreatedAt:   rec.CreatedAt,
	}
}
