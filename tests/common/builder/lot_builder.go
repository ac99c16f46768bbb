//go:build unit || e2e

package builder

import (
	"time"

	"smart-parking/internal/domain/lot"
	reqdto "smart-parking/internal/handler/dto/request"
	"smart-parking/internal/usecase/queries"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotBuilder struct {
	ID            uuid.UUID
	Name          string
	Location      string
	TotalCapacity int
	Description   *string
	Available     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewLotBuilder() *LotBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	desc := "Main parking area on ground floor"
	return &LotBuilder{
		ID:            uuid.New(),
		Name:          "Mall A - Floor 1",
		Location:      "Ground Floor, Mall A",
		TotalCapacity: 15,
		Description:   &desc,
		Available:     10,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) BuildDomain() *lot.Lot {
	return lot.ReconstructLot(b.ID, b.Name, b.Location, b.TotalCapacity, b.Description, b.CreatedAt, b.UpdatedAt)
}

func (b *LotBuilder) BuildSnapshot() *shared.LotSnapshot {
	return &shared.LotSnapshot{
		ID:            b.ID,
		Name:          b.Name,
		Location:      b.Location,
		TotalCapacity: b.TotalCapacity,
		Description:   b.Description,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *LotBuilder) BuildRow() *queries.LotRow {
	return &queries.LotRow{
		ID:             b.ID,
		Name:           b.Name,
		Location:       b.Location,
		TotalCapacity:  b.TotalCapacity,
		Description:    b.Description,
		AvailableCount: b.Available,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *LotBuilder) BuildView() *queries.LotView {
	return &queries.LotView{
		ID:             b.ID,
		Name:           b.Name,
		Location:       b.Location,
		TotalCapacity:  b.TotalCapacity,
		Description:    b.Description,
		AvailableSlots: b.Available,
		OccupiedSlots:  b.TotalCapacity - b.Available,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *LotBuilder) BuildHeader() queries.LotHeader {
	return queries.LotHeader{ID: b.ID, Name: b.Name, Location: b.Location, TotalCapacity: b.TotalCapacity}
}

func (b *LotBuilder) BuildCreateRequestDTO() reqdto.CreateLotRequest {
	capacity := b.TotalCapacity
	return reqdto.CreateLotRequest{
		Name:          b.Name,
		Location:      b.Location,
		TotalCapacity: &capacity,
		Description:   b.Description,
	}
}
