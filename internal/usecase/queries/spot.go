package queries

//go:generate mockgen -source=spot.go -destination=../../../tests/mock/queries/spot_mock.go -package=queriesmock

import (
	"context"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

type SpotReadStore interface {
	// ListByLot returns spots ordered by label, byte-wise.
	ListByLot(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SpotDetailView, error)
}

type SpotQueries interface {
	ListByLot(ctx context.Context, lotID uuid.UUID) (*LotSpotsView, error)
	Get(ctx context.Context, id uuid.UUID) (*SpotDetailView, error)
}

type spotQueriesImpl struct {
	lots  LotReadStore
	spots SpotReadStore
}

func NewSpotQueries(lots LotReadStore, spots SpotReadStore) SpotQueries {
	return &spotQueriesImpl{lots: lots, spots: spots}
}

func (q *spotQueriesImpl) ListByLot(ctx context.Context, lotID uuid.UUID) (*LotSpotsView, error) {
	lotRow, err := q.lots.FindByID(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLotNotFound
		}
		return nil, err
	}

	spots, err := q.spots.ListByLot(ctx, lotID)
	if err != nil {
		return nil, err
	}

	return &LotSpotsView{
		Lot: LotHeader{
			ID:            lotRow.ID,
			Name:          lotRow.Name,
			Location:      lotRow.Location,
			TotalCapacity: lotRow.TotalCapacity,
		},
		Summary: Summarize(spots),
		Spots:   spots,
	}, nil
}

func (q *spotQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*SpotDetailView, error) {
	view, err := q.spots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSpotNotFound
		}
		return nil, err
	}
	return view, nil
}

func Summarize(spots []*SpotView) SpotSummary {
	summary := SpotSummary{Total: len(spots)}
	for _, s := range spots {
		switch spot.Status(s.Status) {
		case spot.StatusAvailable:
			summary.Available++
		case spot.StatusOccupied:
			summary.Occupied++
		case spot.StatusReserved:
			summary.Reserved++
		}
	}
	return summary
}
