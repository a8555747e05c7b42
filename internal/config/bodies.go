package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/san-kum/moonsim/internal/dynamo"
)

var bodyPattern = regexp.MustCompile(`^<\s*x\s*=\s*([+-]?\d+)\s*,\s*y\s*=\s*([+-]?\d+)\s*,\s*z\s*=\s*([+-]?\d+)\s*>$`)

// ParseBody reads one "<x=INT, y=INT, z=INT>" tuple into a body at rest.
func ParseBody(line string) (dynamo.Body, error) {
	m := bodyPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return dynamo.Body{}, fmt.Errorf("%w: %q", dynamo.ErrInvalidInput, line)
	}
	var coords [3]int64
	for i := range coords {
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return dynamo.Body{}, fmt.Errorf("%w: %q: %v", dynamo.ErrInvalidInput, line, err)
		}
		coords[i] = v
	}
	return dynamo.NewBody(coords[0], coords[1], coords[2]), nil
}

// FormatBody is the inverse of ParseBody; velocity is not written.
func FormatBody(b dynamo.Body) string {
	return fmt.Sprintf("<x=%d, y=%d, z=%d>", b.Pos[dynamo.X], b.Pos[dynamo.Y], b.Pos[dynamo.Z])
}

// ParseBodies reads one body per line. Blank lines and lines starting with
// '#' are skipped.
func ParseBodies(r io.Reader) (dynamo.State, error) {
	var state dynamo.State
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b, err := ParseBody(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		state = append(state, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrInputUnavailable, err)
	}
	if len(state) == 0 {
		return nil, dynamo.ErrEmptyInput
	}
	return state, nil
}

// ParseBodyList parses already split tuples, as found in config files.
func ParseBodyList(lines []string) (dynamo.State, error) {
	state := make(dynamo.State, 0, len(lines))
	for i, line := range lines {
		b, err := ParseBody(line)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		state = append(state, b)
	}
	if len(state) == 0 {
		return nil, dynamo.ErrEmptyInput
	}
	return state, nil
}

func LoadBodies(path string) (dynamo.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrInputUnavailable, err)
	}
	defer f.Close()

	state, err := ParseBodies(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return state, nil
}
