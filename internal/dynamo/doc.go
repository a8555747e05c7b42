// Package dynamo provides core simulation primitives for the moon system.
//
// The package defines the fundamental types and interfaces shared by the
// rest of the lab:
//
//   - [Body]: a point mass with integer position and velocity on three axes
//   - [State]: the ordered set of bodies advanced tick by tick
//   - [Axis]: tag selecting one of the independent axes x, y, z
//   - [System]: advances a state by one tick
//   - [Hamiltonian]: systems that can report a total energy
//   - [Metric], [Observer]: hooks driven by the simulator
//
// # Example
//
//	x0 := dynamo.State{dynamo.NewBody(1, -4, 3), dynamo.NewBody(-14, 9, -4)}
//	moons := physics.NewMoons()
//	s := sim.New(moons)
//	result, _ := s.Run(ctx, x0, sim.DefaultConfig())
//
// # Value Semantics
//
// A [State] is a slice of [Body] values, not pointers. [State.Clone] is a
// full deep copy, so a snapshot taken before stepping is never disturbed by
// later mutation of the live state.
package dynamo
