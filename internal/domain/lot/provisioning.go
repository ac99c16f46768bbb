package lot

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"smart-parking/internal/domain/spot"
)

const (
	DefaultSection = "A"
	GroundFloor    = "Ground Floor"

	// availablePercent of a new lot's spots start AVAILABLE, the rest OCCUPIED.
	availablePercent = 67
	sectionMarker    = "Mall"
	sectionOffset    = len(sectionMarker) + 1
)

// SectionFor picks the label prefix for a new lot's spots. An explicit
// override wins. Otherwise names like "Mall B - Floor 2" yield "B", taken from
// the character right after "Mall ". Anything else falls back to DefaultSection.
func SectionFor(name string, override *string) string {
	if override != nil {
		if s := strings.TrimSpace(*override); s != "" {
			return s
		}
	}

	idx := strings.Index(name, sectionMarker)
	if idx < 0 || idx+sectionOffset >= len(name) {
		return DefaultSection
	}
	r, _ := utf8.DecodeRuneInString(name[idx+sectionOffset:])
	if r == utf8.RuneError || unicode.IsSpace(r) {
		return DefaultSection
	}
	return string(r)
}

// FloorFor returns the text before the first comma when the location mentions
// a floor ("Floor 1, Mall A" -> "Floor 1"), otherwise GroundFloor.
func FloorFor(location string) string {
	if !strings.Contains(location, "Floor") {
		return GroundFloor
	}
	head, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(head)
}

// AvailableQuota is floor(n * 0.67) in integer arithmetic.
func AvailableQuota(n int) int {
	return n * availablePercent / 100
}

// ProvisionSpots builds the initial spot set for a freshly created lot:
// labels <section>1..<section>N, the first AvailableQuota(N) AVAILABLE.
func ProvisionSpots(l *Lot, sectionOverride *string, now time.Time) ([]*spot.Spot, error) {
	n := l.TotalCapacity()
	section := SectionFor(l.Name(), sectionOverride)
	floor := FloorFor(l.Location())
	quota := AvailableQuota(n)

	spots := make([]*spot.Spot, 0, n)
	for i := 1; i <= n; i++ {
		status := spot.StatusAvailable.String()
		if i > quota {
			status = spot.StatusOccupied.String()
		}
		s, err := spot.NewSpot(spot.Params{
			LotID:   l.ID(),
			Label:   section + strconv.Itoa(i),
			Status:  &status,
			Floor:   &floor,
			Section: &section,
		}, now)
		if err != nil {
			return nil, err
		}
		spots = append(spots, s)
	}
	return spots, nil
}
