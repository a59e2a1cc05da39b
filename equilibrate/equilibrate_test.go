package equilibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/mesoscalelab/moldice/gas"
	"github.com/mesoscalelab/moldice/internal/mt19937"
)

func TestEquilibratePositionsInUnitCube(t *testing.T) {
	assert := assert.New(t)

	s, _ := gas.NewState(256)
	src := mt19937.New(1)
	Equilibrate(s, src)

	for i := 0; i < s.NumParticles(); i++ {
		p := s.Pos(i)
		for axis := 0; axis < 3; axis++ {
			assert.GreaterOrEqual(p[axis], 0.0)
			assert.Less(p[axis], 1.0)
		}
	}
}

func TestEquilibrateZeroesMomentum(t *testing.T) {
	assert := assert.New(t)

	n := 4096
	s, _ := gas.NewState(n)
	src := mt19937.New(2)
	Equilibrate(s, src)

	vx := make([]float64, n)
	vy := make([]float64, n)
	vz := make([]float64, n)
	for i := 0; i < n; i++ {
		v := s.Vel(i)
		vx[i], vy[i], vz[i] = v[0], v[1], v[2]
	}

	assert.InDelta(0, floats.Sum(vx)/float64(n), 1e-7)
	assert.InDelta(0, floats.Sum(vy)/float64(n), 1e-7)
	assert.InDelta(0, floats.Sum(vz)/float64(n), 1e-7)
}

func TestEquilibrateMatchesTargetTemperature(t *testing.T) {
	assert := assert.New(t)

	n := 4096
	s, _ := gas.NewState(n)
	src := mt19937.New(3)
	Equilibrate(s, src)

	energy := make([]float64, n)
	for i := 0; i < n; i++ {
		v := s.Vel(i)
		energy[i] = v.Dot(v)
	}

	avgEnergy := floats.Sum(energy) / (3 * float64(n))
	assert.InDelta(Temperature, avgEnergy, 1e-6)
}

func TestEquilibrateDeterministic(t *testing.T) {
	assert := assert.New(t)

	a, _ := gas.NewState(64)
	b, _ := gas.NewState(64)

	Equilibrate(a, mt19937.New(99))
	Equilibrate(b, mt19937.New(99))

	for i := 0; i < 64; i++ {
		assert.Equal(a.Pos(i), b.Pos(i))
		assert.Equal(a.Vel(i), b.Vel(i))
	}
}
