//go:build unit

package lot_test

import (
	"strconv"
	"testing"
	"time"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionFor(t *testing.T) {
	override := func(s string) *string { return &s }

	tests := []struct {
		name     string
		lotName  string
		override *string
		want     string
	}{
		{name: "letter after Mall", lotName: "Mall A - Floor 1", want: "A"},
		{name: "second mall", lotName: "Mall B - Floor 2", want: "B"},
		{name: "marker in the middle", lotName: "City Mall C", want: "C"},
		{name: "no marker falls back", lotName: "Airport Long Stay", want: lot.DefaultSection},
		{name: "marker at the end falls back", lotName: "Big Mall", want: lot.DefaultSection},
		{name: "space after marker falls back", lotName: "Mall  X", want: lot.DefaultSection},
		{name: "tab after marker falls back", lotName: "Mall \tX", want: lot.DefaultSection},
		{name: "invalid utf-8 falls back", lotName: "Mall \xffX", want: lot.DefaultSection},
		{name: "multibyte section", lotName: "Mall Ü - Floor 1", want: "Ü"},
		{name: "override wins", lotName: "Mall B - Floor 2", override: override("P"), want: "P"},
		{name: "blank override is ignored", lotName: "Mall B - Floor 2", override: override("  "), want: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lot.SectionFor(tt.lotName, tt.override))
		})
	}
}

func TestFloorFor(t *testing.T) {
	assert.Equal(t, "Ground Floor", lot.FloorFor("Ground Floor, Mall A"))
	assert.Equal(t, "Second Floor", lot.FloorFor(" Second Floor , Mall B"))
	assert.Equal(t, "Level 3 Floor", lot.FloorFor("Level 3 Floor"))
	assert.Equal(t, lot.GroundFloor, lot.FloorFor("Downtown, Block 4"))
}

func TestAvailableQuota(t *testing.T) {
	for n, want := range map[int]int{1: 0, 2: 1, 3: 2, 10: 6, 15: 10, 100: 67} {
		assert.Equal(t, want, lot.AvailableQuota(n), "n=%d", n)
	}
}

func TestProvisionSpots(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fifteen spots for the sample mall lot", func(t *testing.T) {
		l, err := lot.NewLot(lot.Params{Name: "Mall A - Floor 1", Location: "Ground Floor, Mall A", TotalCapacity: 15}, now)
		require.NoError(t, err)

		spots, err := lot.ProvisionSpots(l, nil, now)
		require.NoError(t, err)
		require.Len(t, spots, 15)

		available := 0
		for i, s := range spots {
			assert.Equal(t, "A"+strconv.Itoa(i+1), s.Label().String())
			assert.Equal(t, l.ID(), s.LotID())
			assert.Equal(t, "Ground Floor", *s.Floor())
			assert.Equal(t, "A", *s.Section())
			assert.Equal(t, now, s.LastUpdated())
			if i < 10 {
				assert.Equal(t, spot.StatusAvailable, s.Status(), "spot %d", i+1)
				available++
			} else {
				assert.Equal(t, spot.StatusOccupied, s.Status(), "spot %d", i+1)
			}
		}
		assert.Equal(t, 10, available)
	})

	t.Run("explicit section and plain location", func(t *testing.T) {
		section := "Z"
		l, err := lot.NewLot(lot.Params{Name: "Harbour", Location: "Pier 9", TotalCapacity: 3}, now)
		require.NoError(t, err)

		spots, err := lot.ProvisionSpots(l, &section, now)
		require.NoError(t, err)
		require.Len(t, spots, 3)
		assert.Equal(t, "Z1", spots[0].Label().String())
		assert.Equal(t, "Z3", spots[2].Label().String())
		assert.Equal(t, lot.GroundFloor, *spots[0].Floor())
	})

	t.Run("single spot lot starts occupied", func(t *testing.T) {
		l, err := lot.NewLot(lot.Params{Name: "Kiosk", Location: "Corner", TotalCapacity: 1}, now)
		require.NoError(t, err)

		spots, err := lot.ProvisionSpots(l, nil, now)
		require.NoError(t, err)
		require.Len(t, spots, 1)
		assert.Equal(t, spot.StatusOccupied, spots[0].Status())
	})
}
