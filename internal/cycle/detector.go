package cycle

import (
	"errors"

	"github.com/san-kum/moonsim/internal/dynamo"
)

// ErrIncomplete is returned by Period while some axis is still searching.
var ErrIncomplete = errors.New("cycle: not every axis has recurred")

// Record is the outcome of the search on one axis. Step is the 1-based tick
// at which the axis first matched the snapshot.
type Record struct {
	Found bool
	Step  int64
}

// Detector tracks, per axis, whether the system has returned to its
// initial projection.
type Detector struct {
	initial dynamo.State
	records [3]Record
	found   int
}

// NewDetector keeps its own copy of initial.
func NewDetector(initial dynamo.State) *Detector {
	return &Detector{initial: initial.Clone()}
}

// Observe checks x after tick step and returns the axes that recurred on
// this call. Axes already found are never recorded again.
func (d *Detector) Observe(x dynamo.State, step int64) []dynamo.Axis {
	var hits []dynamo.Axis
	for _, a := range dynamo.Axes {
		if d.records[a].Found {
			continue
		}
		if x.AxisEqual(d.initial, a) {
			d.records[a] = Record{Found: true, Step: step}
			d.found++
			hits = append(hits, a)
		}
	}
	return hits
}

func (d *Detector) Done() bool { return d.found == len(dynamo.Axes) }

func (d *Detector) Record(a dynamo.Axis) Record { return d.records[a] }

// Initial returns a copy of the snapshot.
func (d *Detector) Initial() dynamo.State { return d.initial.Clone() }

// Periods returns the recorded step per axis; zero for axes still searching.
func (d *Detector) Periods() [3]int64 {
	var p [3]int64
	for _, a := range dynamo.Axes {
		p[a] = d.records[a].Step
	}
	return p
}

// Period is the full-system recurrence period.
func (d *Detector) Period() (int64, error) {
	if !d.Done() {
		return 0, ErrIncomplete
	}
	p := d.Periods()
	return Combine(p[:]...)
}
