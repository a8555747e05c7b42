// Package viz renders simulation output for the terminal.
//
//   - [FormatState]: one line per body, as printed by the verbose run
//   - [RenderEnergyReport], [RenderPeriodReport]: styled end-of-run summaries
//   - [Model]: live Bubble Tea view that steps the moons in real time
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	+/-   - Ticks per frame
//	Q     - Quit
package viz
