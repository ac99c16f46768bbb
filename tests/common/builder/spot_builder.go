//go:build unit || e2e

package builder

import (
	"time"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/usecase/queries"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotBuilder struct {
	ID          uuid.UUID
	LotID       uuid.UUID
	Label       string
	Status      spot.Status
	Floor       *string
	Section     *string
	LotName     string
	LotLocation string
	LastUpdated time.Time
	CreatedAt   time.Time
}

func NewSpotBuilder() *SpotBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	floor, section := "Ground Floor", "A"
	return &SpotBuilder{
		ID:          uuid.New(),
		LotID:       uuid.New(),
		Label:       "A1",
		Status:      spot.StatusAvailable,
		Floor:       &floor,
		Section:     &section,
		LotName:     "Mall A - Floor 1",
		LotLocation: "Ground Floor, Mall A",
		LastUpdated: now,
		CreatedAt:   now,
	}
}

func (b *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(b)
	return b
}

func (b *SpotBuilder) WithLot(lotID uuid.UUID) *SpotBuilder {
	b.LotID = lotID
	return b
}

func (b *SpotBuilder) WithLabel(label string) *SpotBuilder {
	b.Label = label
	return b
}

func (b *SpotBuilder) WithStatus(status spot.Status) *SpotBuilder {
	b.Status = status
	return b
}

func (b *SpotBuilder) BuildDomain() *spot.Spot {
	return spot.ReconstructSpot(b.ID, b.LotID, b.Label, b.Status, b.Floor, b.Section, b.LastUpdated, b.CreatedAt)
}

func (b *SpotBuilder) BuildSnapshot() *shared.SpotSnapshot {
	return &shared.SpotSnapshot{
		ID:          b.ID,
		LotID:       b.LotID,
		Label:       b.Label,
		Status:      b.Status.String(),
		Floor:       b.Floor,
		Section:     b.Section,
		LastUpdated: b.LastUpdated,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *SpotBuilder) BuildView() *queries.SpotView {
	return &queries.SpotView{
		ID:          b.ID,
		LotID:       b.LotID,
		Label:       b.Label,
		Status:      b.Status.String(),
		Floor:       b.Floor,
		Section:     b.Section,
		LastUpdated: b.LastUpdated,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *SpotBuilder) BuildDetailView() *queries.SpotDetailView {
	return &queries.SpotDetailView{
		SpotView:    *b.BuildView(),
		LotName:     b.LotName,
		LotLocation: b.LotLocation,
	}
}
