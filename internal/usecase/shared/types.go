package shared

import (
	"time"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/domain/spot"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the read models.

type LotSnapshot struct {
	ID            uuid.UUID
	Name          string
	Location      string
	TotalCapacity int
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *LotSnapshot) ToDomain() *lot.Lot {
	return lot.ReconstructLot(s.ID, s.Name, s.Location, s.TotalCapacity, s.Description, s.CreatedAt, s.UpdatedAt)
}

type SpotSnapshot struct {
	ID          uuid.UUID
	LotID       uuid.UUID
	Label       string
	Status      string
	Floor       *string
	Section     *string
	LastUpdated time.Time
	CreatedAt   time.Time
}

func (s *SpotSnapshot) ToDomain() *spot.Spot {
	return spot.ReconstructSpot(s.ID, s.LotID, s.Label, spot.Status(s.Status), s.Floor, s.Section, s.LastUpdated, s.CreatedAt)
}

func SpotSnapshotFrom(s *spot.Spot) *SpotSnapshot {
	return &SpotSnapshot{
		ID:          s.ID(),
		LotID:       s.LotID(),
		Label:       s.Label().String(),
		Status:      s.Status().String(),
		Floor:       s.Floor(),
		Section:     s.Section(),
		LastUpdated: s.LastUpdated(),
		CreatedAt:   s.CreatedAt(),
	}
}

type UserCredentials struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
}
