package random

import "math/rand/v2"

// Source is the randomness used by the slot simulation. Tests swap it for a
// scripted sequence.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type mathSource struct{}

func NewSource() Source {
	return mathSource{}
}

func (mathSource) Float64() float64 { return rand.Float64() }
func (mathSource) IntN(n int) int   { return rand.IntN(n) }

// Scripted replays fixed values, wrapping around when exhausted.
type Scripted struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)] % n
	s.ii++
	return v
}
