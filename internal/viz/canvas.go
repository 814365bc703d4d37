// Package viz renders particle systems to the terminal using braille
// characters, both as static trajectory plots and as a live view.
package viz

import (
	"strings"

	"github.com/celmech/gravsim/internal/vec"
)

// Braille patterns pack 2x4 dots per character cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid. Coordinates passed to Set are
// sub-pixel coordinates; the drawable area is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetDisc fills a small disc of the given radius, used for body
// markers that should read heavier than trail dots.
func (c *Canvas) SetDisc(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Viewport maps world coordinates to canvas sub-pixels. The world
// y axis points up, the canvas y axis points down.
type Viewport struct {
	Center vec.Vec2
	// Scale is sub-pixels per world unit along x. The y scale is
	// halved to compensate for terminal cell aspect ratio.
	Scale  float64
	pw, ph int
}

// FitViewport frames all points with a margin, centered on their
// mean. A degenerate point cloud gets a unit-sized view.
func FitViewport(points []vec.Vec2, c *Canvas) Viewport {
	v := Viewport{Scale: 1, pw: c.Width * 2, ph: c.Height * 4}
	if len(points) == 0 {
		return v
	}

	min, max := points[0], points[0]
	for _, p := range points {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	v.Center = min.Add(max).Scale(0.5)
	extent := max.Sub(min)
	span := extent.X
	if extent.Y*2 > span {
		span = extent.Y * 2
	}
	if span == 0 {
		span = 1
	}
	v.Scale = float64(v.pw) * 0.9 / span
	return v
}

// Project returns the sub-pixel coordinates for a world point.
func (v Viewport) Project(p vec.Vec2) (int, int) {
	d := p.Sub(v.Center)
	x := v.pw/2 + int(d.X*v.Scale)
	y := v.ph/2 - int(d.Y*v.Scale*0.5)
	return x, y
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
