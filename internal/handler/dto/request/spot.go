package request

import (
	"strings"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidLotID = errs.Mark(errs.New("invalid parking lot id"), errs.ErrValidation)

// CreateSpotRequest also accepts the legacy field names parkingLot and
// spotNumber.
type CreateSpotRequest struct {
	LotID      string  `json:"lotId"`
	ParkingLot string  `json:"parkingLot"`
	Label      string  `json:"label"`
	SpotNumber string  `json:"spotNumber"`
	Status     *string `json:"status"`
	Floor      *string `json:"floor"`
	Section    *string `json:"section"`
}

func (r *CreateSpotRequest) ToInput() (commands.CreateSpotInput, error) {
	rawLot := firstNonBlank(r.LotID, r.ParkingLot)
	if rawLot == "" {
		return commands.CreateSpotInput{}, spot.ErrMissingLot
	}
	lotID, err := uuid.Parse(rawLot)
	if err != nil {
		return commands.CreateSpotInput{}, ErrInvalidLotID
	}

	return commands.CreateSpotInput{
		LotID:   lotID,
		Label:   firstNonBlank(r.Label, r.SpotNumber),
		Status:  r.Status,
		Floor:   r.Floor,
		Section: r.Section,
	}, nil
}

type UpdateSpotStatusRequest struct {
	Status string `json:"status"`
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
