package lot

import (
	"strings"
	"time"

	"smart-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingFields   = errs.Mark(errs.New("please provide name, location, and total capacity"), errs.ErrValidation)
	ErrEmptyName       = errs.Mark(errs.New("name cannot be empty"), errs.ErrValidation)
	ErrEmptyLocation   = errs.Mark(errs.New("location cannot be empty"), errs.ErrValidation)
	ErrInvalidCapacity = errs.Mark(errs.New("total capacity must be at least 1"), errs.ErrValidation)
)

type Lot struct {
	id            uuid.UUID
	name          string
	location      string
	totalCapacity int
	description   *string
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	Name          string
	Location      string
	TotalCapacity int
	Description   *string
}

func NewLot(p Params, now time.Time) (*Lot, error) {
	name := strings.TrimSpace(p.Name)
	location := strings.TrimSpace(p.Location)
	if name == "" || location == "" || p.TotalCapacity == 0 {
		return nil, ErrMissingFields
	}
	if p.TotalCapacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Lot{
		id:            uuid.New(),
		name:          name,
		location:      location,
		totalCapacity: p.TotalCapacity,
		description:   p.Description,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructLot rebuilds a lot from storage without validation.
func ReconstructLot(id uuid.UUID, name, location string, totalCapacity int, description *string, createdAt, updatedAt time.Time) *Lot {
	return &Lot{
		id:            id,
		name:          name,
		location:      location,
		totalCapacity: totalCapacity,
		description:   description,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Patch carries the fields of a partial update. nil means "keep the current value".
type Patch struct {
	Name          *string
	Location      *string
	TotalCapacity *int
	Description   *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Location == nil && p.TotalCapacity == nil && p.Description == nil
}

// ApplyPatch validates every supplied field before mutating anything.
// Capacity changes do not add or remove spots.
func (l *Lot) ApplyPatch(p Patch, now time.Time) error {
	name, location := l.name, l.location
	if p.Name != nil {
		name = strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
	}
	if p.Location != nil {
		location = strings.TrimSpace(*p.Location)
		if location == "" {
			return ErrEmptyLocation
		}
	}
	capacity := l.totalCapacity
	if p.TotalCapacity != nil {
		if *p.TotalCapacity < 1 {
			return ErrInvalidCapacity
		}
		capacity = *p.TotalCapacity
	}

	l.name = name
	l.location = location
	l.totalCapacity = capacity
	if p.Description != nil {
		desc := *p.Description
		l.description = &desc
	}
	l.updatedAt = now
	return nil
}

func (l *Lot) ID() uuid.UUID        { return l.id }
func (l *Lot) Name() string         { return l.name }
func (l *Lot) Location() string     { return l.location }
func (l *Lot) TotalCapacity() int   { return l.totalCapacity }
func (l *Lot) Description() *string { return l.description }
func (l *Lot) CreatedAt() time.Time { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time { return l.updatedAt }
