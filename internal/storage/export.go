package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/san-kum/moonsim/internal/dynamo"
)

type ExportBody struct {
	Pos dynamo.Vec3 `json:"pos"`
	Vel dynamo.Vec3 `json:"vel"`
}

type ExportData struct {
	RunMetadata
	Trajectory []ExportFrame `json:"trajectory"`
}

type ExportFrame struct {
	Step   int64        `json:"step"`
	Bodies []ExportBody `json:"bodies"`
}

// ExportJSON writes the run summary and its trajectory as indented json.
func ExportJSON(w io.Writer, meta RunMetadata, states []dynamo.State, steps []int64) error {
	data := ExportData{
		RunMetadata: meta,
		Trajectory:  make([]ExportFrame, len(states)),
	}

	for i, x := range states {
		frame := ExportFrame{Bodies: make([]ExportBody, len(x))}
		if i < len(steps) {
			frame.Step = steps[i]
		}
		for j, b := range x {
			frame.Bodies[j] = ExportBody{Pos: b.Pos, Vel: b.Vel}
		}
		data.Trajectory[i] = frame
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes states in the same layout as a stored states.csv.
func ExportCSV(w io.Writer, states []dynamo.State, steps []int64) error {
	cw := csv.NewWriter(w)
	if err := writeStates(cw, states, steps); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
