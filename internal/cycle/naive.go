package cycle

import (
	"fmt"

	"github.com/san-kum/moonsim/internal/dynamo"
)

// Recurrence describes the first repeated full state found by NaivePeriod.
// FirstSeen is the tick at which the repeated state originally appeared;
// Period is Step - FirstSeen.
type Recurrence struct {
	Step      int64
	FirstSeen int64
	Period    int64
}

// NaivePeriod steps a copy of x0 and remembers every full state until one
// repeats. Memory grows with the period, so it is only for small systems.
func NaivePeriod(sys dynamo.System, x0 dynamo.State, maxSteps int64) (Recurrence, error) {
	if len(x0) == 0 {
		return Recurrence{}, dynamo.ErrEmptySystem
	}
	x := x0.Clone()
	seen := map[string]int64{x.Key(): 0}

	for step := int64(1); maxSteps <= 0 || step <= maxSteps; step++ {
		sys.Step(x)
		key := x.Key()
		if first, ok := seen[key]; ok {
			return Recurrence{Step: step, FirstSeen: first, Period: step - first}, nil
		}
		seen[key] = step
	}
	return Recurrence{}, &dynamo.SimulationError{
		Step:    maxSteps,
		Wrapped: fmt.Errorf("naive search: %w", dynamo.ErrNoRecurrence),
	}
}
