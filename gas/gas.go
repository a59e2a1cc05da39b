// Package gas implements the simulated particle ensemble that a
// Molecular Dice generator treats as its entropy pool: a periodic unit
// cube of point particles whose positions and velocities evolve under
// pairwise, non-elastic "collisions."
package gas

import (
	"fmt"

	"github.com/mesoscalelab/moldice/vecmath"
)

// State is an ordered sequence of N particles, each with a position and
// a velocity. N is fixed for the lifetime of a State; it is sized once
// by NewState and never resized.
type State struct {
	pos []vecmath.Vec3
	vel []vecmath.Vec3
}

// NewState allocates a State of n particles. Positions and velocities
// are left zeroed; callers are expected to equilibrate the state before
// using it as an entropy source.
func NewState(n int) (*State, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid particle count: %d", n)
	}
	return &State{
		pos: make([]vecmath.Vec3, n),
		vel: make([]vecmath.Vec3, n),
	}, nil
}

// NumParticles returns the number of particles in the state.
func (s *State) NumParticles() int {
	return len(s.vel)
}

// Pos returns the position of particle i.
func (s *State) Pos(i int) vecmath.Vec3 {
	return s.pos[i]
}

// SetPos sets the position of particle i.
func (s *State) SetPos(i int, p vecmath.Vec3) {
	s.pos[i] = p
}

// Vel returns the velocity of particle i.
func (s *State) Vel(i int) vecmath.Vec3 {
	return s.vel[i]
}

// SetVel sets the velocity of particle i.
func (s *State) SetVel(i int, v vecmath.Vec3) {
	s.vel[i] = v
}

// PeriodicWrap maps x into the unit interval by adding or subtracting 1
// once. It is not a true modulo: a position displaced by more than one
// full unit in a single step is not fully reduced. The generator only
// ever advances positions by |v|*dt << 1, so this single-application
// wrap is sufficient in practice; it is preserved exactly as specified.
func (s *State) PeriodicWrap(x float64) float64 {
	switch {
	case x < 0:
		return x + 1
	case x > 1:
		return x - 1
	default:
		return x
	}
}

// UpdatePos advances the position of particle i by vel(i)*dt and wraps
// each coordinate back into the unit cube.
func (s *State) UpdatePos(i int, dt float64) {
	p := s.pos[i]
	v := s.vel[i]
	s.pos[i] = vecmath.Vec3{
		s.PeriodicWrap(p[0] + v[0]*dt),
		s.PeriodicWrap(p[1] + v[1]*dt),
		s.PeriodicWrap(p[2] + v[2]*dt),
	}
}

// UpdateAllPos applies UpdatePos to every particle in index order.
func (s *State) UpdateAllPos(dt float64) {
	for i := range s.pos {
		s.UpdatePos(i, dt)
	}
}

// UpdateVel applies the collision kernel to particles a and b: the
// relative velocity is rotated by R (a half-rotation matrix, see
// vecmath.NewRotation) and the result redistributed around the pair's
// center-of-mass velocity. Because R carries its 0.5 scale factor, this
// does not conserve kinetic energy or momentum in the usual elastic
// sense — that is intentional.
func (s *State) UpdateVel(R vecmath.RotationMatrix, a, b int) {
	ua := s.vel[a]
	ub := s.vel[b]
	uRel := ua.Sub(ub)
	vRel := R.Rotate(uRel)
	uCM := ua.Add(ub).Mul(0.5)

	s.vel[a] = uCM.Add(vRel)
	s.vel[b] = uCM.Sub(vRel)
}

// Update always applies the collision kernel to particles a and b, and
// additionally advances their positions by dt when movePositions is
// true.
func (s *State) Update(R vecmath.RotationMatrix, a, b int, movePositions bool, dt float64) {
	s.UpdateVel(R, a, b)
	if movePositions {
		s.UpdatePos(a, dt)
		s.UpdatePos(b, dt)
	}
}
