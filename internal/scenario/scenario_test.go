package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesAndGet(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		s, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name)
		assert.NotEmpty(t, s.Description)
	}

	_, err := Get("black-hole-merger")
	assert.Error(t, err)
}

func TestFixedScenarios(t *testing.T) {
	tests := []struct {
		name   string
		bodies int
	}{
		{"binary", 2},
		{"figure-eight", 3},
		{"three-body-periodic", 3},
		{"solar-system", 9},
		{"small-solar-system", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Get(tt.name)
			require.NoError(t, err)

			sys, err := s.Generate(0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.bodies, sys.N())
			assert.True(t, sys.IsValid())
		})
	}
}

func TestPeriodicOrbitsHaveZeroMomentum(t *testing.T) {
	for _, name := range []string{"binary", "figure-eight", "three-body-periodic"} {
		t.Run(name, func(t *testing.T) {
			s, err := Get(name)
			require.NoError(t, err)
			sys, err := s.Generate(0, 0)
			require.NoError(t, err)

			assert.InDelta(t, 0, sys.Momentum().X, 1e-9)
			assert.InDelta(t, 0, sys.Momentum().Y, 1e-9)
		})
	}
}

func TestGeneratePlanetarySystem(t *testing.T) {
	sys, err := GeneratePlanetarySystem(20, 1e-3, 31415)
	require.NoError(t, err)
	require.Equal(t, 20, sys.N())

	assert.Equal(t, 1.0, sys.Masses()[0], "central body has unit mass")
	assert.Zero(t, sys.Positions()[0], "central body at origin")
	assert.Zero(t, sys.Velocities()[0], "central body at rest")

	for i := 1; i < sys.N(); i++ {
		assert.Greater(t, sys.Masses()[i], 0.0)
		assert.LessOrEqual(t, sys.Masses()[i], 1e-3)
		assert.Greater(t, sys.Positions()[i].Norm(), 0.0, "outer body %d at origin", i)
	}
}

func TestGeneratePlanetarySystemSeeded(t *testing.T) {
	a, err := GeneratePlanetarySystem(10, 1e-3, 42)
	require.NoError(t, err)
	b, err := GeneratePlanetarySystem(10, 1e-3, 42)
	require.NoError(t, err)

	assert.Equal(t, a.Positions(), b.Positions(), "same seed must reproduce the system")

	c, err := GeneratePlanetarySystem(10, 1e-3, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.Positions(), c.Positions(), "different seeds should differ")
}

func TestGeneratePlanetarySystemValidation(t *testing.T) {
	_, err := GeneratePlanetarySystem(0, 1e-3, 1)
	assert.Error(t, err)

	_, err = GeneratePlanetarySystem(5, 0, 1)
	assert.Error(t, err)
}
