// Package export writes simulation results to JSON, CSV and SVG for
// offline analysis and plotting.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/sim"
	"github.com/celmech/gravsim/internal/vec"
)

// Meta labels a run in exported files.
type Meta struct {
	Force      string
	Integrator string
	Scenario   string
	Dt         float64
	Duration   float64
}

type exportData struct {
	Force       string             `json:"force"`
	Integrator  string             `json:"integrator"`
	Scenario    string             `json:"scenario"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Bodies      int                `json:"bodies"`
	Steps       int                `json:"steps"`
	EnergyDrift float64            `json:"energy_drift"`
	Times       []float64          `json:"times"`
	Frames      [][]float64        `json:"frames"`
	Energy      []float64          `json:"energy"`
	Metrics     map[string]float64 `json:"metrics"`
}

// WriteJSON encodes the run to w. Each frame is flattened to
// x0, y0, x1, y1, ... in body order.
func WriteJSON(w io.Writer, meta Meta, result *sim.Result) error {
	bodies := 0
	if len(result.Frames) > 0 {
		bodies = len(result.Frames[0])
	}

	data := exportData{
		Force:       meta.Force,
		Integrator:  meta.Integrator,
		Scenario:    meta.Scenario,
		Dt:          meta.Dt,
		Duration:    meta.Duration,
		Bodies:      bodies,
		Steps:       result.StepsTaken,
		EnergyDrift: result.EnergyDrift,
		Times:       result.Times,
		Frames:      make([][]float64, len(result.Frames)),
		Energy:      result.Energy,
		Metrics:     result.Metrics,
	}

	for i, frame := range result.Frames {
		flat := make([]float64, 0, 2*len(frame))
		for _, p := range frame {
			flat = append(flat, p.X, p.Y)
		}
		data.Frames[i] = flat
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// JSON writes the run to a file.
func JSON(path string, meta Meta, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, result)
}

// WriteCSV emits one row per sampled frame: time, energy, then the
// flattened body positions. The header names columns x0,y0,x1,y1,...
func WriteCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)

	bodies := 0
	if len(result.Frames) > 0 {
		bodies = len(result.Frames[0])
	}

	header := []string{"time", "energy"}
	for i := 0; i < bodies; i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i, frame := range result.Frames {
		row = row[:0]
		row = append(row,
			fmt.Sprintf("%.17g", result.Times[i]),
			fmt.Sprintf("%.17g", result.Energy[i]))
		for _, p := range frame {
			row = append(row, fmt.Sprintf("%.17g", p.X), fmt.Sprintf("%.17g", p.Y))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV writes the sampled trajectory to a file.
func CSV(path string, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, result)
}

// PotentialSeries recomputes the softened potential energy for every
// sampled frame. Frames are independent, so the O(n^2) sums run in
// parallel across frames.
func PotentialSeries(frames [][]vec.Vec2, masses []float64, g, eps float64) []float64 {
	out := make([]float64, len(frames))
	force.ParallelFor(len(frames), 4, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = body.Potential(frames[i], masses, g, eps)
		}
	})
	return out
}
