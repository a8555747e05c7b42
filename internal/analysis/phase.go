package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/moonsim/internal/dynamo"
)

// AxisSeries returns the position (or velocity) of body on axis a at every
// recorded state.
func AxisSeries(states []dynamo.State, body int, a dynamo.Axis, velocity bool) ([]float64, error) {
	if err := checkBody(states, body); err != nil {
		return nil, err
	}
	series := make([]float64, len(states))
	for i, x := range states {
		if velocity {
			series[i] = float64(x[body].Vel[a])
		} else {
			series[i] = float64(x[body].Pos[a])
		}
	}
	return series, nil
}

// PhasePortrait holds (position, velocity) samples of one body on one axis.
type PhasePortrait struct {
	Body   int
	Axis   dynamo.Axis
	Points []dynamo.Phase
}

func GeneratePhasePortrait(states []dynamo.State, body int, a dynamo.Axis) (*PhasePortrait, error) {
	if err := checkBody(states, body); err != nil {
		return nil, err
	}
	portrait := &PhasePortrait{
		Body:   body,
		Axis:   a,
		Points: make([]dynamo.Phase, len(states)),
	}
	for i, x := range states {
		portrait.Points[i] = x[body].Project(a)
	}
	return portrait, nil
}

func checkBody(states []dynamo.State, body int) error {
	if len(states) == 0 {
		return fmt.Errorf("no recorded states")
	}
	if body < 0 || body >= len(states[0]) {
		return fmt.Errorf("body %d out of range (run has %d bodies)", body, len(states[0]))
	}
	return nil
}

// PhasePortraitToASCII plots position horizontally and velocity vertically.
func PhasePortraitToASCII(portrait *PhasePortrait, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 {
		return ""
	}

	minX, maxX := portrait.Points[0].Pos, portrait.Points[0].Pos
	minY, maxY := portrait.Points[0].Vel, portrait.Points[0].Vel
	for _, p := range portrait.Points {
		minX, maxX = min(minX, p.Pos), max(maxX, p.Pos)
		minY, maxY = min(minY, p.Vel), max(maxY, p.Vel)
	}

	rangeX := float64(maxX - minX)
	rangeY := float64(maxY - minY)
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	toCol := func(v int64) int { return int(float64(v-minX) / rangeX * float64(width-1)) }
	toRow := func(v int64) int { return height - 1 - int(float64(v-minY)/rangeY*float64(height-1)) }

	// Axes first so samples draw over them.
	if minX <= 0 && maxX >= 0 {
		col := toCol(0)
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := toRow(0)
		for col := 0; col < width; col++ {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for _, p := range portrait.Points {
		canvas[toRow(p.Vel)][toCol(p.Pos)] = '•'
	}
	start := portrait.Points[0]
	canvas[toRow(start.Vel)][toCol(start.Pos)] = 'o'

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
