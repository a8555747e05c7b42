package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/physics"
)

func orbit(steps int) []dynamo.State {
	m := physics.NewMoons()
	x := dynamo.State{dynamo.NewBody(-1, 0, 2), dynamo.NewBody(2, -10, -7), dynamo.NewBody(4, -8, 8)}
	states := []dynamo.State{x.Clone()}
	for i := 0; i < steps; i++ {
		m.Step(x)
		states = append(states, x.Clone())
	}
	return states
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in   string
		want Plane
		ok   bool
	}{
		{"xy", Plane{dynamo.X, dynamo.Y}, true},
		{"ZX", Plane{dynamo.Z, dynamo.X}, true},
		{"xx", Plane{}, false},
		{"x", Plane{}, false},
		{"xw", Plane{}, false},
	}
	for _, tt := range tests {
		got, err := ParsePlane(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParsePlane(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParsePlane(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOrbitsSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := OrbitsSVG(&buf, orbit(20), Plane{dynamo.X, dynamo.Y}, 400, 300); err != nil {
		t.Fatalf("OrbitsSVG failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output is not a complete svg document")
	}
	if n := strings.Count(out, "<path"); n != 3 {
		t.Errorf("expected one path per body, got %d", n)
	}
	if n := strings.Count(out, " L"); n != 3*20 {
		t.Errorf("expected 60 line segments, got %d", n)
	}
}

func TestOrbitsSVGTooShort(t *testing.T) {
	var buf bytes.Buffer
	if err := OrbitsSVG(&buf, orbit(0), Plane{dynamo.X, dynamo.Y}, 400, 300); err == nil {
		t.Error("expected error for a single state")
	}
}
