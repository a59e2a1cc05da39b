// Package equilibrate seeds a particle gas to Maxwell-Boltzmann
// equilibrium from an external uniform/Gaussian source, the one-shot
// bootstrap step a Molecular Dice generator runs at construction.
package equilibrate

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mesoscalelab/moldice/gas"
	"github.com/mesoscalelab/moldice/vecmath"
)

// Temperature is the target kinetic temperature T used to rescale
// velocities after center-of-mass removal.
const Temperature = 2.0

// Equilibrate draws positions uniformly on the unit cube and velocities
// from a zero-mean Gaussian at Temperature, then removes center-of-mass
// drift and rescales every velocity so the ensemble's mean squared
// velocity per axis matches Temperature exactly. src is the external
// seeding source; it is used only for the duration of this call and is
// not retained. All positions are drawn before any velocity so that the
// order of draws from src is fixed regardless of how the two draw loops
// interleave internally.
func Equilibrate(s *gas.State, src rand.Source) {
	n := s.NumParticles()
	sigma := math.Sqrt(Temperature)

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	for i := 0; i < n; i++ {
		s.SetPos(i, vecmath.NewVec3(uniform.Rand(), uniform.Rand(), uniform.Rand()))
	}

	normal := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	for i := 0; i < n; i++ {
		s.SetVel(i, vecmath.NewVec3(normal.Rand(), normal.Rand(), normal.Rand()))
	}

	removeDrift(s)
	rescale(s, sigma)
}

// removeDrift subtracts the ensemble's mean velocity from every
// particle so the gas starts with zero net momentum.
func removeDrift(s *gas.State) {
	n := s.NumParticles()
	vx := make([]float64, n)
	vy := make([]float64, n)
	vz := make([]float64, n)
	for i := 0; i < n; i++ {
		v := s.Vel(i)
		vx[i], vy[i], vz[i] = v[0], v[1], v[2]
	}

	cm := vecmath.NewVec3(
		floats.Sum(vx)/float64(n),
		floats.Sum(vy)/float64(n),
		floats.Sum(vz)/float64(n),
	)

	for i := 0; i < n; i++ {
		s.SetVel(i, s.Vel(i).Sub(cm))
	}
}

// rescale multiplies every velocity by sigma/sqrt(E), where E is the
// ensemble's mean squared velocity per axis (sum of |v|^2 over 3N), so
// that E matches Temperature exactly.
func rescale(s *gas.State, sigma float64) {
	n := s.NumParticles()
	energy := make([]float64, n)
	for i := 0; i < n; i++ {
		v := s.Vel(i)
		energy[i] = v.Dot(v)
	}

	avgEnergy := floats.Sum(energy) / (3 * float64(n))
	factor := sigma / math.Sqrt(avgEnergy)

	for i := 0; i < n; i++ {
		s.SetVel(i, s.Vel(i).Mul(factor))
	}
}
