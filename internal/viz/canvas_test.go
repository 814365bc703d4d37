package viz

import (
	"strings"
	"testing"

	"github.com/celmech/gravsim/internal/vec"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %#x", c.Grid[0][0])
	}

	// out of range coordinates must be ignored
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)

	c.Clear()
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("clear left %#x", c.Grid[0][0])
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	set := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("line drew nothing")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()
	if strings.Count(s, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", s)
	}
}

func TestFitViewport(t *testing.T) {
	c := NewCanvas(40, 20)
	points := []vec.Vec2{{X: -1, Y: -1}, {X: 1, Y: 1}}
	vp := FitViewport(points, c)

	for _, p := range points {
		x, y := vp.Project(p)
		if x < 0 || x >= c.Width*2 || y < 0 || y >= c.Height*4 {
			t.Errorf("point %v projected off canvas to (%d,%d)", p, x, y)
		}
	}

	// center must project to the canvas center
	x, y := vp.Project(vec.Vec2{})
	if x != c.Width || y != c.Height*2 {
		t.Errorf("origin projected to (%d,%d), want (%d,%d)", x, y, c.Width, c.Height*2)
	}
}

func TestFitViewportDegenerate(t *testing.T) {
	c := NewCanvas(10, 10)
	vp := FitViewport([]vec.Vec2{{X: 3, Y: 4}}, c)
	x, y := vp.Project(vec.Vec2{X: 3, Y: 4})
	if x != c.Width || y != c.Height*2 {
		t.Errorf("single point should land at center, got (%d,%d)", x, y)
	}

	vp = FitViewport(nil, c)
	if vp.Scale != 1 {
		t.Errorf("empty input should give unit scale, got %v", vp.Scale)
	}
}

func TestTrajectoryPlot(t *testing.T) {
	frames := [][]vec.Vec2{
		{{X: -0.5, Y: 0}, {X: 0.5, Y: 0}},
		{{X: 0, Y: -0.5}, {X: 0, Y: 0.5}},
	}
	s := TrajectoryPlot(frames, 20, 10)
	if strings.Count(s, "\n") != 10 {
		t.Errorf("expected 10 rows, got %d", strings.Count(s, "\n"))
	}
	if !strings.ContainsFunc(s, func(r rune) bool { return r > 0x2800 && r <= 0x28ff }) {
		t.Error("plot has no set dots")
	}
}

func TestEnergyChart(t *testing.T) {
	if EnergyChart([]float64{1}, 30, 4) != "" {
		t.Error("single sample should produce no chart")
	}
	if EnergyChart([]float64{1, 1.1, 0.9, 1}, 30, 4) == "" {
		t.Error("expected a chart")
	}
}
