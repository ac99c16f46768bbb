package spot

import "smart-parking/internal/pkg/random"

// ChangeProbability is the per-spot chance of a status flip in one simulation run.
const ChangeProbability = 0.3

var simulatedStatuses = []Status{StatusAvailable, StatusOccupied}

// Simulator emulates sensor updates. RESERVED is never produced, but a
// reserved spot can be picked and overwritten.
type Simulator struct {
	rnd random.Source
}

func NewSimulator(rnd random.Source) *Simulator {
	return &Simulator{rnd: rnd}
}

// Next reports whether the spot is touched this round and, if so, its new status.
// The new status may equal the current one.
func (s *Simulator) Next() (Status, bool) {
	if s.rnd.Float64() >= ChangeProbability {
		return "", false
	}
	return simulatedStatuses[s.rnd.IntN(len(simulatedStatuses))], true
}
