// Package export writes recorded trajectories as SVG images.
package export
