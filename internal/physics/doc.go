// Package physics provides the moon system model.
//
// [Moons] implements [dynamo.System] with the unit-step gravity rule and
// [dynamo.Hamiltonian] with the potential-times-kinetic energy rule:
//
//	moons := physics.NewMoons()
//	moons.Step(state)
//	energy := moons.Energy(state)
//
// # Two-Phase Ticks
//
// A tick applies gravity for every ordered pair of bodies before any body
// drifts. Drifting a body while others still read its position gives a
// different trajectory.
package physics
