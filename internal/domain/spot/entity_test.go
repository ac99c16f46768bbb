//go:build unit

package spot_test

import (
	"testing"
	"time"

	"smart-parking/internal/domain/spot"
	"smart-parking/internal/pkg/errs"
	"smart-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewSpot(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lotID := uuid.New()

	t.Run("defaults to AVAILABLE", func(t *testing.T) {
		s, err := spot.NewSpot(spot.Params{LotID: lotID, Label: " B7 "}, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, lotID, s.LotID())
		assert.Equal(t, "B7", s.Label().String())
		assert.Equal(t, spot.StatusAvailable, s.Status())
		assert.Nil(t, s.Floor())
		assert.Nil(t, s.Section())
		assert.Equal(t, now, s.LastUpdated())
		assert.Equal(t, now, s.CreatedAt())
	})

	t.Run("optional fields are trimmed and blank ones dropped", func(t *testing.T) {
		s, err := spot.NewSpot(spot.Params{
			LotID:   lotID,
			Label:   "C1",
			Status:  strPtr("RESERVED"),
			Floor:   strPtr(" Level 2 "),
			Section: strPtr("   "),
		}, now)
		require.NoError(t, err)

		assert.Equal(t, spot.StatusReserved, s.Status())
		assert.Equal(t, "Level 2", *s.Floor())
		assert.Nil(t, s.Section())
	})

	tests := []struct {
		name   string
		params spot.Params
		errIs  error
	}{
		{name: "missing lot", params: spot.Params{Label: "A1"}, errIs: spot.ErrMissingLot},
		{name: "blank label", params: spot.Params{LotID: lotID, Label: "  "}, errIs: spot.ErrEmptyLabel},
		{name: "lower-case status", params: spot.Params{LotID: lotID, Label: "A1", Status: strPtr("available")}, errIs: spot.ErrInvalidStatus},
		{name: "unknown status", params: spot.Params{LotID: lotID, Label: "A1", Status: strPtr("BROKEN")}, errIs: spot.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spot.NewSpot(tt.params, now)
			assert.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestChangeStatus(t *testing.T) {
	later := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)

	t.Run("updates status and timestamp", func(t *testing.T) {
		s := builder.NewSpotBuilder().BuildDomain()
		require.NoError(t, s.ChangeStatus(spot.StatusOccupied, later))
		assert.Equal(t, spot.StatusOccupied, s.Status())
		assert.Equal(t, later, s.LastUpdated())
	})

	t.Run("same status still refreshes the timestamp", func(t *testing.T) {
		s := builder.NewSpotBuilder().WithStatus(spot.StatusAvailable).BuildDomain()
		require.NoError(t, s.ChangeStatus(spot.StatusAvailable, later))
		assert.Equal(t, later, s.LastUpdated())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		b := builder.NewSpotBuilder()
		s := b.BuildDomain()
		assert.ErrorIs(t, s.ChangeStatus(spot.Status("FREE"), later), spot.ErrInvalidStatus)
		assert.Equal(t, b.Status, s.Status())
		assert.Equal(t, b.LastUpdated, s.LastUpdated())
	})
}

func TestNewStatus(t *testing.T) {
	for _, in := range []string{"AVAILABLE", "OCCUPIED", "RESERVED"} {
		st, err := spot.NewStatus(in)
		require.NoError(t, err)
		assert.Equal(t, in, st.String())
	}
	for _, in := range []string{"", "Occupied", " AVAILABLE"} {
		_, err := spot.NewStatus(in)
		assert.ErrorIs(t, err, spot.ErrInvalidStatus, "input %q", in)
	}
}
