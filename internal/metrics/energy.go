package metrics

import "github.com/san-kum/moonsim/internal/dynamo"

// Energy reports the total energy of the last observed state.
type Energy struct {
	name    string
	sys     dynamo.Hamiltonian
	current int64
}

func NewEnergy(sys dynamo.Hamiltonian) *Energy {
	return &Energy{
		name: "energy",
		sys:  sys,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(x dynamo.State, step int64) {
	e.current = e.sys.Energy(x)
}

func (e *Energy) Value() int64 { return e.current }

func (e *Energy) Reset() { e.current = 0 }

// PeakEnergy reports the largest total energy observed during a run.
type PeakEnergy struct {
	name string
	sys  dynamo.Hamiltonian
	peak int64
	step int64
}

func NewPeakEnergy(sys dynamo.Hamiltonian) *PeakEnergy {
	return &PeakEnergy{
		name: "peak_energy",
		sys:  sys,
	}
}

func (p *PeakEnergy) Name() string { return p.name }

func (p *PeakEnergy) Observe(x dynamo.State, step int64) {
	if e := p.sys.Energy(x); e > p.peak {
		p.peak = e
		p.step = step
	}
}

func (p *PeakEnergy) Value() int64 { return p.peak }

// Step is the tick at which the peak was first reached.
func (p *PeakEnergy) Step() int64 { return p.step }

func (p *PeakEnergy) Reset() {
	p.peak = 0
	p.step = 0
}
