package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/celmech/gravsim/internal/vec"
)

// TrajectoryPlot renders a completed run as a static braille plot.
// All frames share one viewport so the trails stay in place; the final
// frame's bodies are drawn as discs.
func TrajectoryPlot(frames [][]vec.Vec2, width, height int) string {
	canvas := NewCanvas(width, height)
	if len(frames) == 0 {
		return canvas.String()
	}

	all := make([]vec.Vec2, 0, len(frames)*len(frames[0]))
	for _, frame := range frames {
		all = append(all, frame...)
	}
	vp := FitViewport(all, canvas)

	for _, frame := range frames {
		for _, p := range frame {
			x, y := vp.Project(p)
			canvas.Set(x, y)
		}
	}
	for _, p := range frames[len(frames)-1] {
		x, y := vp.Project(p)
		canvas.SetDisc(x, y, 1)
	}

	return canvas.String()
}

// EnergyChart plots the total energy over a run.
func EnergyChart(energy []float64, width, height int) string {
	if len(energy) < 2 {
		return ""
	}
	return asciigraph.Plot(energy,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("Total energy"))
}
