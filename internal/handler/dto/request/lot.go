package request

import (
	"smart-parking/internal/domain/lot"
	"smart-parking/internal/pkg/patch"
	"smart-parking/internal/usecase/commands"
)

// CreateLotRequest leaves required fields unbound so a missing field reaches
// the domain check and gets its message.
type CreateLotRequest struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	TotalCapacity *int    `json:"totalCapacity"`
	Description   *string `json:"description"`
	Section       *string `json:"section" binding:"omitempty,max=8"`
}

func (r *CreateLotRequest) ToInput() commands.CreateLotInput {
	return commands.CreateLotInput{
		Name:          r.Name,
		Location:      r.Location,
		TotalCapacity: patch.Coalesce(r.TotalCapacity, 0),
		Description:   r.Description,
		Section:       patch.TrimmedOrNil(r.Section),
	}
}

// UpdateLotRequest treats an absent or null field as "not provided".
type UpdateLotRequest struct {
	Name          *string `json:"name"`
	Location      *string `json:"location"`
	TotalCapacity *int    `json:"totalCapacity"`
	Description   *string `json:"description"`
}

func (r *UpdateLotRequest) ToPatch() lot.Patch {
	return lot.Patch{
		Name:          r.Name,
		Location:      r.Location,
		TotalCapacity: r.TotalCapacity,
		Description:   r.Description,
	}
}
