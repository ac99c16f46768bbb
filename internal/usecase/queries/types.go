package queries

import (
	"time"

	"github.com/google/uuid"
)

// LotView is a lot with occupancy derived from its spots at read time.
type LotView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	TotalCapacity  int       `json:"totalCapacity"`
	Description    *string   `json:"description,omitempty"`
	AvailableSlots int       `json:"availableSlots"`
	OccupiedSlots  int       `json:"occupiedSlots"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// LotRow is what the read store returns before derived counts are applied.
type LotRow struct {
	ID             uuid.UUID
	Name           string
	Location       string
	TotalCapacity  int
	Description    *string
	AvailableCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SpotView struct {
	ID          uuid.UUID `json:"id"`
	LotID       uuid.UUID `json:"lotId"`
	Label       string    `json:"label"`
	Status      string    `json:"status"`
	Floor       *string   `json:"floor,omitempty"`
	Section     *string   `json:"section,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SpotDetailView adds the owning lot's name and location.
type SpotDetailView struct {
	SpotView
	LotName     string `json:"lotName"`
	LotLocation string `json:"lotLocation"`
}

type LotHeader struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	TotalCapacity int       `json:"totalCapacity"`
}

type SpotSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
}

type LotSpotsView struct {
	Lot     LotHeader   `json:"parkingLot"`
	Summary SpotSummary `json:"summary"`
	Spots   []*SpotView `json:"slots"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
