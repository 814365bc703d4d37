package scenario

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/vec"
)

// GeneratePlanetarySystem builds a randomized planetary system: a
// central body of mass 1 surrounded by light bodies on roughly
// circular anticlockwise orbits. Radii follow a gamma distribution
// scaled with the body count, orbital speeds use the two-body
// approximation v = sqrt(1/r). Depending on the draw, close
// encounters may eject bodies over long runs; the chance grows with
// the body count.
func GeneratePlanetarySystem(bodies int, maxMass float64, seed int64) (*body.System, error) {
	if bodies < 1 {
		return nil, fmt.Errorf("scenario: planetary system needs at least one body, got %d", bodies)
	}
	if maxMass <= 0 {
		return nil, fmt.Errorf("scenario: max mass must be positive, got %v", maxMass)
	}

	src := rand.NewSource(uint64(seed))
	rng := rand.New(src)
	radius := distuv.Gamma{Alpha: 7.5, Beta: 1, Src: src}

	pos := make([]vec.Vec2, bodies)
	vel := make([]vec.Vec2, bodies)
	masses := make([]float64, bodies)

	scale := math.Pow(float64(bodies), 0.8)
	for i := 0; i < bodies; i++ {
		m := rng.Float64() * maxMass
		if m == 0 {
			m = maxMass
		}
		masses[i] = m

		theta := rng.Float64() * 2 * math.Pi
		r := radius.Rand() * scale
		pos[i] = vec.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}

		v := math.Sqrt(1 / r)
		vel[i] = vec.Vec2{X: -v * math.Sin(theta), Y: v * math.Cos(theta)}
	}

	// heavy central body at rest
	masses[0] = 1
	pos[0] = vec.Vec2{}
	vel[0] = vec.Vec2{}

	return body.New(pos, vel, masses)
}
