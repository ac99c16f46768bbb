package spot

import (
	"strings"

	"smart-parking/internal/pkg/errs"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOccupied  Status = "OCCUPIED"
	StatusReserved  Status = "RESERVED"
)

var (
	ErrInvalidStatus = errs.Mark(errs.New("please provide valid status (AVAILABLE, OCCUPIED, or RESERVED)"), errs.ErrValidation)
	ErrEmptyLabel    = errs.Mark(errs.New("spot number is required"), errs.ErrValidation)
	ErrMissingLot    = errs.Mark(errs.New("parking lot id is required"), errs.ErrValidation)
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved:
		return true
	default:
		return false
	}
}

// NewStatus accepts only the exact upper-case names.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Label is a spot's human-readable identifier ("A1", "B12"), unique per lot.
type Label struct {
	value string
}

func NewLabel(s string) (Label, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Label{}, ErrEmptyLabel
	}
	return Label{value: t}, nil
}

func (l Label) String() string { return l.value }
