package queries

//go:generate mockgen -source=lot.go -destination=../../../tests/mock/queries/lot_mock.go -package=queriesmock

import (
	"context"

	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

type LotReadStore interface {
	List(ctx context.Context) ([]*LotRow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LotRow, error)
}

type LotQueries interface {
	List(ctx context.Context) ([]*LotView, error)
	Get(ctx context.Context, id uuid.UUID) (*LotView, error)
}

type lotQueriesImpl struct {
	store LotReadStore
}

func NewLotQueries(store LotReadStore) LotQueries {
	return &lotQueriesImpl{store: store}
}

func (q *lotQueriesImpl) List(ctx context.Context) ([]*LotView, error) {
	rows, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*LotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toLotView(row))
	}
	return views, nil
}

func (q *lotQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*LotView, error) {
	row, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLotNotFound
		}
		return nil, err
	}
	return toLotView(row), nil
}

// Occupied is capacity minus available, so it can go negative when the
// capacity was lowered below the number of available spots.
func toLotView(row *LotRow) *LotView {
	return &LotView{
		ID:             row.ID,
		Name:           row.Name,
		Location:       row.Location,
		TotalCapacity:  row.TotalCapacity,
		Description:    row.Description,
		AvailableSlots: row.AvailableCount,
		OccupiedSlots:  row.TotalCapacity - row.AvailableCount,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
