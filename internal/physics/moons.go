package physics

import "github.com/san-kum/moonsim/internal/dynamo"

// Moons is the axis-independent gravity system.
type Moons struct{}

func NewMoons() *Moons {
	return &Moons{}
}

// Step advances x by one tick in place.
func (m *Moons) Step(x dynamo.State) {
	for i := range x {
		for j := range x {
			if i != j {
				x[i].ApplyGravityFrom(x[j])
			}
		}
	}
	for i := range x {
		x[i].Drift()
	}
}

// Energy sums the total energy of every body.
func (m *Moons) Energy(x dynamo.State) int64 {
	var total int64
	for _, b := range x {
		total += b.TotalEnergy()
	}
	return total
}

// Simulate returns a copy of x0 advanced by steps ticks.
func (m *Moons) Simulate(x0 dynamo.State, steps int64) dynamo.State {
	x := x0.Clone()
	for i := int64(0); i < steps; i++ {
		m.Step(x)
	}
	return x
}

// EnergyAfter is the total energy of x0 after steps ticks. x0 is not modified.
func EnergyAfter(x0 dynamo.State, steps int64) int64 {
	m := NewMoons()
	return m.Energy(m.Simulate(x0, steps))
}
