package response

import (
	"time"

	"smart-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LotResponse struct {
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

func FromLotView(v *queries.LotView) *LotResponse {
	return &LotResponse{
		ID:             v.ID,
		Name:           v.Name,
		Location:       v.Location,
		TotalCapacity:  v.TotalCapacity,
		Description:    v.Description,
		AvailableSlots: v.AvailableSlots,
		OccupiedSlots:  v.OccupiedSlots,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromLotViews(vs []*queries.LotView) []*LotResponse {
	out := make([]*LotResponse, len(vs))
	for i, v := range vs {
		out[i] = FromLotView(v)
	}
	return out
}
