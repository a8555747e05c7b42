package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		line string
		want dynamo.Body
	}{
		{"<x=1, y=-4, z=3>", dynamo.NewBody(1, -4, 3)},
		{"<x=-14,y=9,z=-4>", dynamo.NewBody(-14, 9, -4)},
		{"  < x = 6 , y = -9 , z = -11 >  ", dynamo.NewBody(6, -9, -11)},
		{"<x=+2, y=0, z=0>", dynamo.NewBody(2, 0, 0)},
	}
	for _, tt := range tests {
		got, err := ParseBody(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
		assert.Equal(t, dynamo.Vec3{}, got.Vel, "parsed bodies start at rest")
	}
}

func TestParseBodyInvalid(t *testing.T) {
	for _, line := range []string{
		"",
		"<x=1, y=2>",
		"<x=1, y=2, z=3",
		"<y=1, x=2, z=3>",
		"<x=a, y=2, z=3>",
		"<x=99999999999999999999, y=0, z=0>",
	} {
		_, err := ParseBody(line)
		assert.ErrorIs(t, err, dynamo.ErrInvalidInput, line)
	}
}

func TestFormatBody(t *testing.T) {
	b := dynamo.NewBody(-4, -6, 7)
	line := FormatBody(b)
	assert.Equal(t, "<x=-4, y=-6, z=7>", line)

	back, err := ParseBody(line)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestParseBodies(t *testing.T) {
	input := `# sample
<x=-1, y=0, z=2>

<x=2, y=-10, z=-7>
<x=4, y=-8, z=8>
<x=3, y=5, z=-1>
`
	state, err := ParseBodies(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, state, 4)
	assert.Equal(t, dynamo.NewBody(3, 5, -1), state[3])
}

func TestParseBodiesReportsLine(t *testing.T) {
	input := "<x=1, y=2, z=3>\n\n<x=1; y=2; z=3>\n"
	_, err := ParseBodies(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dynamo.ErrInvalidInput))
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseBodiesEmpty(t *testing.T) {
	_, err := ParseBodies(strings.NewReader("\n# nothing here\n"))
	assert.ErrorIs(t, err, dynamo.ErrEmptyInput)

	_, err = ParseBodyList(nil)
	assert.ErrorIs(t, err, dynamo.ErrEmptyInput)
}

func TestLoadBodies(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", "<x=1, y=-4, z=3>\n<x=-14, y=9, z=-4>\n")

	state, err := LoadBodies(path)
	require.NoError(t, err)
	assert.Len(t, state, 2)

	_, err = LoadBodies(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, dynamo.ErrInputUnavailable)
}
