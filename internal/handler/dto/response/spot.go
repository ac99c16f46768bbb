package response

import (
	"time"

	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/queries"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID          uuid.UUID `json:"id"`
	LotID       uuid.UUID `json:"lotId"`
	Label       string    `json:"label"`
	Status      string    `json:"status"`
	Floor       *string   `json:"floor,omitempty"`
	Section     *string   `json:"section,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SpotDetailResponse struct {
	SpotResponse
	LotName     string `json:"lotName"`
	LotLocation string `json:"lotLocation"`
}

type LotSpotsResponse struct {
	ParkingLot queries.LotHeader   `json:"parkingLot"`
	Summary    queries.SpotSummary `json:"summary"`
	Slots      []*SpotResponse     `json:"slots"`
}

func FromSpotDetailView(v *queries.SpotDetailView) (*SpotDetailResponse, error) {
	var out SpotDetailResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "copy spot detail")
	}
	return &out, nil
}

func FromLotSpotsView(v *queries.LotSpotsView) (*LotSpotsResponse, error) {
	slots := make([]*SpotResponse, 0, len(v.Spots))
	if err := copier.Copy(&slots, v.Spots); err != nil {
		return nil, errs.Wrap(err, "copy spots")
	}
	return &LotSpotsResponse{
		ParkingLot: v.Lot,
		Summary:    v.Summary,
		Slots:      slots,
	}, nil
}

func FromSpotSnapshots(snaps []*shared.SpotSnapshot) ([]*SpotResponse, error) {
	out := make([]*SpotResponse, 0, len(snaps))
	if err := copier.Copy(&out, snaps); err != nil {
		return nil, errs.Wrap(err, "copy simulated spots")
	}
	return out, nil
}
