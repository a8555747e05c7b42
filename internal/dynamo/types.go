package dynamo

import (
	"fmt"
	"strings"
)

// Axis selects one of the three independent coordinate axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Axes lists every axis in order.
var Axes = [3]Axis{X, Y, Z}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis accepts "x", "y" or "z" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("unknown axis %q (want x, y or z)", s)
}

// Vec3 holds one integer component per axis.
type Vec3 [3]int64

// AbsSum returns |x| + |y| + |z|.
func (v Vec3) AbsSum() int64 {
	var sum int64
	for _, c := range v {
		if c < 0 {
			c = -c
		}
		sum += c
	}
	return sum
}

// Body is a point mass. Its identity is its index within a State.
type Body struct {
	Pos Vec3
	Vel Vec3
}

// NewBody returns a body at rest at (x, y, z).
func NewBody(x, y, z int64) Body {
	return Body{Pos: Vec3{x, y, z}}
}

// ApplyGravityFrom nudges the velocity one unit towards other on each axis.
// Only positions are read and only velocity is written, so every pair of a
// tick can be applied before any body drifts.
func (b *Body) ApplyGravityFrom(other Body) {
	for _, a := range Axes {
		switch {
		case b.Pos[a] > other.Pos[a]:
			b.Vel[a]--
		case b.Pos[a] < other.Pos[a]:
			b.Vel[a]++
		}
	}
}

// Drift adds the velocity to the position.
func (b *Body) Drift() {
	for _, a := range Axes {
		b.Pos[a] += b.Vel[a]
	}
}

func (b Body) PotentialEnergy() int64 { return b.Pos.AbsSum() }
func (b Body) KineticEnergy() int64   { return b.Vel.AbsSum() }

// TotalEnergy is the product of potential and kinetic energy, not the sum.
func (b Body) TotalEnergy() int64 {
	return b.PotentialEnergy() * b.KineticEnergy()
}

// Phase is the projection of a body onto one axis.
type Phase struct {
	Pos, Vel int64
}

func (b Body) Project(a Axis) Phase {
	return Phase{Pos: b.Pos[a], Vel: b.Vel[a]}
}

func (b Body) String() string {
	return fmt.Sprintf("pos=<x=%3d, y=%3d, z=%3d>, vel=<x=%3d, y=%3d, z=%3d>",
		b.Pos[X], b.Pos[Y], b.Pos[Z], b.Vel[X], b.Vel[Y], b.Vel[Z])
}

// State is the ordered set of bodies of one system.
type State []Body

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Equal reports whether every body matches on every axis.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// AxisEqual compares only the (position, velocity) projection on axis a,
// pairing bodies by index.
func (s State) AxisEqual(other State, a Axis) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Pos[a] != other[i].Pos[a] || s[i].Vel[a] != other[i].Vel[a] {
			return false
		}
	}
	return true
}

// Key encodes the full state as a comparable string.
func (s State) Key() string {
	var sb strings.Builder
	for _, b := range s {
		fmt.Fprintf(&sb, "%d,%d,%d,%d,%d,%d;",
			b.Pos[X], b.Pos[Y], b.Pos[Z], b.Vel[X], b.Vel[Y], b.Vel[Z])
	}
	return sb.String()
}

// System advances a state by one tick, in place.
type System interface {
	Step(x State)
}

type Hamiltonian interface {
	Energy(x State) int64
}

type Metric interface {
	Name() string
	Observe(x State, step int64)
	Value() int64
	Reset()
}

type Observer interface {
	OnStep(x State, step int64)
}

// RecurrenceObserver is notified when an axis first returns to its
// initial projection.
type RecurrenceObserver interface {
	OnRecurrence(a Axis, step int64, x State)
}
