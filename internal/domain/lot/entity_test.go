//go:build unit

package lot_test

import (
	"testing"
	"time"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/pkg/errs"
	"smart-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLot(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	valid := lot.Params{Name: " Mall A - Floor 1 ", Location: "Ground Floor, Mall A", TotalCapacity: 15}

	t.Run("basic success case", func(t *testing.T) {
		l, err := lot.NewLot(valid, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, "Mall A - Floor 1", l.Name())
		assert.Equal(t, 15, l.TotalCapacity())
		assert.Nil(t, l.Description())
		assert.Equal(t, now, l.CreatedAt())
		assert.Equal(t, now, l.UpdatedAt())
	})

	tests := []struct {
		name   string
		mutate func(*lot.Params)
		errIs  error
	}{
		{name: "blank name", mutate: func(p *lot.Params) { p.Name = "  " }, errIs: lot.ErrMissingFields},
		{name: "missing location", mutate: func(p *lot.Params) { p.Location = "" }, errIs: lot.ErrMissingFields},
		{name: "missing capacity", mutate: func(p *lot.Params) { p.TotalCapacity = 0 }, errIs: lot.ErrMissingFields},
		{name: "negative capacity", mutate: func(p *lot.Params) { p.TotalCapacity = -3 }, errIs: lot.ErrInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			_, err := lot.NewLot(p, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestApplyPatch(t *testing.T) {
	later := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	t.Run("omitted fields keep their value", func(t *testing.T) {
		l := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, l.ApplyPatch(lot.Patch{Name: str("Renamed")}, later))

		assert.Equal(t, "Renamed", l.Name())
		assert.Equal(t, "Ground Floor, Mall A", l.Location())
		assert.Equal(t, 15, l.TotalCapacity())
		assert.Equal(t, "Main parking area on ground floor", *l.Description())
		assert.Equal(t, later, l.UpdatedAt())
	})

	t.Run("description can be cleared", func(t *testing.T) {
		l := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, l.ApplyPatch(lot.Patch{Description: str("")}, later))
		require.NotNil(t, l.Description())
		assert.Equal(t, "", *l.Description())
	})

	t.Run("capacity change does not touch other fields", func(t *testing.T) {
		l := builder.NewLotBuilder().BuildDomain()
		require.NoError(t, l.ApplyPatch(lot.Patch{TotalCapacity: num(40)}, later))
		assert.Equal(t, 40, l.TotalCapacity())
	})

	t.Run("invalid field leaves the lot untouched", func(t *testing.T) {
		tests := []struct {
			name  string
			patch lot.Patch
			errIs error
		}{
			{name: "zero capacity", patch: lot.Patch{Name: str("New"), TotalCapacity: num(0)}, errIs: lot.ErrInvalidCapacity},
			{name: "blank name", patch: lot.Patch{Name: str(" ")}, errIs: lot.ErrEmptyName},
			{name: "blank location", patch: lot.Patch{Name: str("New"), Location: str("")}, errIs: lot.ErrEmptyLocation},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := builder.NewLotBuilder()
				l := b.BuildDomain()

				err := l.ApplyPatch(tt.patch, later)
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, b.Name, l.Name())
				assert.Equal(t, b.TotalCapacity, l.TotalCapacity())
				assert.Equal(t, b.UpdatedAt, l.UpdatedAt())
			})
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.True(t, lot.Patch{}.IsEmpty())
		assert.False(t, lot.Patch{Description: str("")}.IsEmpty())
	})
}
