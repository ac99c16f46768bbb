package spot

import (
	"time"

	"smart-parking/internal/pkg/patch"

	"github.com/google/uuid"
)

type Spot struct {
	id          uuid.UUID
	lotID       uuid.UUID
	label       Label
	status      Status
	floor       *string
	section     *string
	lastUpdated time.Time
	createdAt   time.Time
}

type Params struct {
	LotID   uuid.UUID
	Label   string
	Status  *string
	Floor   *string
	Section *string
}

func NewSpot(p Params, now time.Time) (*Spot, error) {
	if p.LotID == uuid.Nil {
		return nil, ErrMissingLot
	}

	label, err := NewLabel(p.Label)
	if err != nil {
		return nil, err
	}

	status := StatusAvailable
	if p.Status != nil {
		status, err = NewStatus(*p.Status)
		if err != nil {
			return nil, err
		}
	}

	return &Spot{
		id:          uuid.New(),
		lotID:       p.LotID,
		label:       label,
		status:      status,
		floor:       patch.TrimmedOrNil(p.Floor),
		section:     patch.TrimmedOrNil(p.Section),
		lastUpdated: now,
		createdAt:   now,
	}, nil
}

// ReconstructSpot rebuilds a spot from storage without validation.
func ReconstructSpot(id, lotID uuid.UUID, label string, status Status, floor, section *string, lastUpdated, createdAt time.Time) *Spot {
	return &Spot{
		id:          id,
		lotID:       lotID,
		label:       Label{value: label},
		status:      status,
		floor:       floor,
		section:     section,
		lastUpdated: lastUpdated,
		createdAt:   createdAt,
	}
}

// ChangeStatus always refreshes lastUpdated, even when the status is unchanged.
func (s *Spot) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	s.status = status
	s.lastUpdated = now
	return nil
}

func (s *Spot) ID() uuid.UUID          { return s.id }
func (s *Spot) LotID() uuid.UUID       { return s.lotID }
func (s *Spot) Label() Label           { return s.label }
func (s *Spot) Status() Status         { return s.status }
func (s *Spot) Floor() *string         { return s.floor }
func (s *Spot) Section() *string       { return s.section }
func (s *Spot) LastUpdated() time.Time { return s.lastUpdated }
func (s *Spot) CreatedAt() time.Time   { return s.createdAt }
