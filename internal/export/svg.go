package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/moonsim/internal/dynamo"
)

var palette = []string{"#00ffff", "#ff00ff", "#ffcc00", "#00ff88", "#ff4444", "#0088ff"}

// Plane selects the two axes an orbit is projected onto.
type Plane struct {
	H, V dynamo.Axis
}

// ParsePlane accepts two distinct axis letters, such as "xy" or "zx".
func ParsePlane(s string) (Plane, error) {
	if len(s) != 2 {
		return Plane{}, fmt.Errorf("plane %q: want two axes such as xy", s)
	}
	h, err := dynamo.ParseAxis(s[:1])
	if err != nil {
		return Plane{}, err
	}
	v, err := dynamo.ParseAxis(s[1:])
	if err != nil {
		return Plane{}, err
	}
	if h == v {
		return Plane{}, fmt.Errorf("plane %q: axes must differ", s)
	}
	return Plane{H: h, V: v}, nil
}

func (p Plane) String() string { return p.H.String() + p.V.String() }

// OrbitsSVG draws the path of every body projected onto the plane, with a
// dot at each body's starting position.
func OrbitsSVG(w io.Writer, states []dynamo.State, plane Plane, width, height int) error {
	if len(states) < 2 {
		return fmt.Errorf("need at least two states, got %d", len(states))
	}

	minX, maxX := states[0][0].Pos[plane.H], states[0][0].Pos[plane.H]
	minY, maxY := states[0][0].Pos[plane.V], states[0][0].Pos[plane.V]
	for _, x := range states {
		for _, b := range x {
			minX, maxX = min(minX, b.Pos[plane.H]), max(maxX, b.Pos[plane.H])
			minY, maxY = min(minY, b.Pos[plane.V]), max(maxY, b.Pos[plane.V])
		}
	}

	// 10% margin on each side.
	rangeX := float64(maxX-minX) * 1.2
	rangeY := float64(maxY-minY) * 1.2
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	originX := float64(minX) - float64(maxX-minX)*0.1
	originY := float64(minY) - float64(maxY-minY)*0.1

	project := func(b dynamo.Body) (float64, float64) {
		px := (float64(b.Pos[plane.H]) - originX) / rangeX * float64(width)
		py := float64(height) - (float64(b.Pos[plane.V])-originY)/rangeY*float64(height)
		return px, py
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for i := range states[0] {
		color := palette[i%len(palette)]
		fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, color)
		for t, x := range states {
			px, py := project(x[i])
			if t == 0 {
				fmt.Fprintf(bw, "M%.1f,%.1f", px, py)
			} else {
				fmt.Fprintf(bw, " L%.1f,%.1f", px, py)
			}
		}
		bw.WriteString("\"/>\n")

		sx, sy := project(states[0][i])
		fmt.Fprintf(bw, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n", sx, sy, color)
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}
