// Package scenario provides ready-made initial conditions for the
// simulator: classic periodic orbits, a scaled solar system, and a
// random planetary-system generator.
package scenario

import (
	"fmt"
	"sort"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/vec"
)

// Scenario is a named set of initial conditions. Generate may depend
// on the requested body count and seed; fixed scenarios ignore both.
type Scenario struct {
	Name        string
	Description string
	Generate    func(bodies int, seed int64) (*body.System, error)
}

var registry = map[string]Scenario{}

func register(s Scenario) {
	registry[s.Name] = s
}

// Get looks up a scenario by name.
func Get(name string) (Scenario, error) {
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	return s, nil
}

// Names lists the registered scenarios alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fixed(pos, vel []vec.Vec2, masses []float64) func(int, int64) (*body.System, error) {
	return func(int, int64) (*body.System, error) {
		return body.New(pos, vel, masses)
	}
}

// Planetary masses in units of the solar mass.
const (
	solarMass   = 1.9885e30
	mercuryMass = 3.3011e23 / solarMass
	venusMass   = 4.8675e24 / solarMass
	earthMass   = 5.97237e24 / solarMass
	marsMass    = 6.4171e23 / solarMass
	jupiterMass = 1.8982e27 / solarMass
	saturnMass  = 5.6834e26 / solarMass
	uranusMass  = 8.6810e25 / solarMass
	plutoMass   = 1.303e22 / solarMass
)

func init() {
	register(Scenario{
		Name:        "binary",
		Description: "two equal masses in a bound orbit",
		Generate: fixed(
			[]vec.Vec2{{X: -0.5}, {X: 0.5}},
			[]vec.Vec2{{Y: -0.5}, {Y: 0.5}},
			[]float64{1, 1},
		),
	})

	// Chenciner, Montgomery. "A remarkable periodic solution of the
	// three-body problem in the case of equal masses". 2000.
	register(Scenario{
		Name:        "figure-eight",
		Description: "three equal masses chasing each other on a figure-eight",
		Generate: fixed(
			[]vec.Vec2{
				{X: -0.97000436, Y: 0.24308753},
				{X: 0, Y: 0},
				{X: 0.97000436, Y: -0.24308753},
			},
			[]vec.Vec2{
				{X: 0.93240737 / 2, Y: 0.86473146 / 2},
				{X: -0.93240737, Y: -0.86473146},
				{X: 0.93240737 / 2, Y: 0.86473146 / 2},
			},
			[]float64{1, 1, 1},
		),
	})

	// Xiaoming Li, Yipeng Jing, Shijun Liao. "The 1223 new periodic
	// orbits of planar three-body problem with unequal mass and zero
	// angular momentum". 2017.
	register(Scenario{
		Name:        "three-body-periodic",
		Description: "periodic planar three-body orbit with unequal masses",
		Generate: fixed(
			[]vec.Vec2{{X: -1}, {X: 1}, {X: 0}},
			[]vec.Vec2{
				{X: 0.2009656237, Y: 0.2431076328},
				{X: 0.2009656237, Y: 0.2431076328},
				{X: -4 * 0.2009656237, Y: -4 * 0.2431076328},
			},
			[]float64{1, 1, 0.5},
		),
	})

	register(Scenario{
		Name:        "solar-system",
		Description: "nine-body solar system in solar-mass units",
		Generate: fixed(
			[]vec.Vec2{
				{},
				{Y: 1.29},
				{Y: -2.4},
				{X: -2.35, Y: 2.35},
				{X: 3.58, Y: -3.58},
				{X: 12.21, Y: 12.21},
				{X: -22.44, Y: -22.44},
				{X: -45.07, Y: 45.07},
				{X: 99.03, Y: 13.92},
			},
			[]vec.Vec2{
				{},
				{X: 0.88},
				{X: -0.645},
				{X: 0.388, Y: 0.388},
				{X: -0.314, Y: -0.314},
				{X: 0.17, Y: -0.17},
				{X: -0.125, Y: 0.125},
				{X: 0.0886, Y: 0.0886},
				{X: 0.014, Y: -0.099},
			},
			[]float64{
				1, mercuryMass, venusMass, earthMass, marsMass,
				jupiterMass, saturnMass, uranusMass, plutoMass,
			},
		),
	})

	register(Scenario{
		Name:        "small-solar-system",
		Description: "solar system reduced to four bodies",
		Generate: fixed(
			[]vec.Vec2{{}, {Y: 1.29}, {Y: -2.4}, {X: -45.07, Y: 45.07}},
			[]vec.Vec2{{}, {X: 0.88}, {X: -0.645}, {X: 0.0886, Y: 0.0886}},
			[]float64{1, mercuryMass, venusMass, uranusMass},
		),
	})

	register(Scenario{
		Name:        "planetary",
		Description: "randomly generated planetary system around a central mass",
		Generate: func(bodies int, seed int64) (*body.System, error) {
			return GeneratePlanetarySystem(bodies, 1e-3, seed)
		},
	})
}
