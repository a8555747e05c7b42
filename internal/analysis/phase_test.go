package analysis

import (
	"strings"
	"testing"

	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/physics"
)

func trajectory(steps int) []dynamo.State {
	moons := physics.NewMoons()
	x := dynamo.State{dynamo.NewBody(0, 0, 0), dynamo.NewBody(3, 0, 0)}
	states := []dynamo.State{x.Clone()}
	for i := 0; i < steps; i++ {
		moons.Step(x)
		states = append(states, x.Clone())
	}
	return states
}

func TestAxisSeries(t *testing.T) {
	states := trajectory(4)

	pos, err := AxisSeries(states, 0, dynamo.X, false)
	if err != nil {
		t.Fatalf("AxisSeries failed: %v", err)
	}
	want := []float64{0, 1, 3, 4, 4}
	for i := range want {
		if pos[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, pos[i], want[i])
		}
	}

	vel, err := AxisSeries(states, 0, dynamo.X, true)
	if err != nil {
		t.Fatalf("AxisSeries failed: %v", err)
	}
	if vel[1] != 1 || vel[2] != 2 {
		t.Errorf("unexpected velocities %v", vel)
	}
}

func TestAxisSeriesBadBody(t *testing.T) {
	if _, err := AxisSeries(trajectory(2), 5, dynamo.X, false); err == nil {
		t.Error("expected error for out of range body")
	}
	if _, err := AxisSeries(nil, 0, dynamo.X, false); err == nil {
		t.Error("expected error for empty trajectory")
	}
}

func TestPhasePortraitClosesAfterPeriod(t *testing.T) {
	states := trajectory(8)

	portrait, err := GeneratePhasePortrait(states, 1, dynamo.X)
	if err != nil {
		t.Fatalf("GeneratePhasePortrait failed: %v", err)
	}
	if len(portrait.Points) != 9 {
		t.Fatalf("expected 9 points, got %d", len(portrait.Points))
	}
	if portrait.Points[8] != portrait.Points[0] {
		t.Errorf("portrait should close after 8 ticks: %v vs %v", portrait.Points[8], portrait.Points[0])
	}
}

func TestPhasePortraitToASCII(t *testing.T) {
	portrait, err := GeneratePhasePortrait(trajectory(8), 0, dynamo.X)
	if err != nil {
		t.Fatalf("GeneratePhasePortrait failed: %v", err)
	}

	out := PhasePortraitToASCII(portrait, 20, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}
	if !strings.ContainsRune(out, 'o') {
		t.Error("expected start marker in plot")
	}
	if PhasePortraitToASCII(nil, 20, 10) != "" {
		t.Error("nil portrait should render empty")
	}
}
