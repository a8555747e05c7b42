package metrics

import "github.com/san-kum/moonsim/internal/dynamo"

// StillBodies counts bodies with zero velocity in the last observed state.
type StillBodies struct {
	name  string
	still int64
}

func NewStillBodies() *StillBodies {
	return &StillBodies{name: "still_bodies"}
}

func (s *StillBodies) Name() string {
	return s.name
}

func (s *StillBodies) Observe(x dynamo.State, step int64) {
	s.still = 0
	for _, b := range x {
		if b.KineticEnergy() == 0 {
			s.still++
		}
	}
}

func (s *StillBodies) Value() int64 {
	return s.still
}

func (s *StillBodies) Reset() {
	s.still = 0
}

// Defaults returns the metrics attached to every run of sys.
func Defaults(sys dynamo.Hamiltonian) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergy(sys),
		NewPeakEnergy(sys),
		NewStillBodies(),
	}
}
