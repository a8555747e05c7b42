// Package analysis extracts views of a recorded trajectory.
//
//   - [AxisSeries]: one coordinate of one body over time, for line plots
//   - [GeneratePhasePortrait]: position against velocity on one axis
//   - [PhasePortraitToASCII]: terminal rendering of a portrait
//
// Because each axis evolves on its own, a portrait on one axis closes into a
// loop after that axis's period, regardless of the other two.
package analysis
