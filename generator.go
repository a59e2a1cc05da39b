package moldice

import (
	"fmt"
	"math"

	"github.com/mesoscalelab/moldice/equilibrate"
	"github.com/mesoscalelab/moldice/gas"
	"github.com/mesoscalelab/moldice/internal/mt19937"
	"github.com/mesoscalelab/moldice/vecmath"
)

// Reference construction defaults, matching the original C++
// implementation's constructor defaults.
const (
	DefaultSeed      uint64  = 1234
	DefaultParticles int     = 131072
	DefaultDt        float64 = 0.1
)

// Generator is the Molecular Dice PRNG: a public sampling API backed by
// a simulated particle gas. A Generator is single-threaded and not
// re-entrant — all of its buffers, counters, and particle state belong
// exclusively to the one instance, and callers sharing it across
// goroutines must serialize access themselves.
type Generator struct {
	state *gas.State
	dt    float64

	unipBuf [6]float64
	unifBuf [6]float64
	normBuf [3]float64
	expoBuf [3]float64

	unipUsed int
	unifUsed int
	normUsed int
	expoUsed int

	rot vecmath.RotationMatrix

	start, shift, jump int
	idxA, idxB         int

	unipBuffersFilled    int
	maxUnipBuffersFilled int

	pairsCollided    int
	maxPairsCollided int
}

// New constructs a Generator with n particles, seeded from seed, with
// collision timestep dt. It fails with an error if n is too small to
// support a usable collision schedule (fewer than 16 particles).
func New(seed uint64, n int, dt float64) (*Generator, error) {
	const unipBufSize = 6
	maxUnipBuffersFilled := (3 * n) / unipBufSize
	maxPairsCollided := n / 8
	if maxPairsCollided < 2 {
		return nil, fmt.Errorf("invalid particle count: %d (need at least 16 particles)", n)
	}

	state, err := gas.NewState(n)
	if err != nil {
		return nil, err
	}

	src := mt19937.New(seed)
	equilibrate.Equilibrate(state, src)
	state.UpdateAllPos(dt)

	g := &Generator{
		state:                state,
		dt:                   dt,
		maxUnipBuffersFilled: maxUnipBuffersFilled,
		maxPairsCollided:     maxPairsCollided,
	}

	g.refreshRandRotMatrixParams()
	g.refreshRandPairSelectParams()

	return g, nil
}

// Uniform returns a sample approximately uniformly distributed on
// (0,1] (modulo the periodic-wrap boundary).
func (g *Generator) Uniform() float64 {
	if g.unifUsed == 0 || g.unifUsed >= len(g.unifBuf) {
		g.refillUnifBuffer()
		g.unifUsed = 0
	}
	v := g.unifBuf[g.unifUsed]
	g.unifUsed++
	return v
}

// Normal returns a sample approximately distributed as Normal(0,1).
func (g *Generator) Normal() float64 {
	if g.normUsed == 0 || g.normUsed >= len(g.normBuf) {
		g.refillNormBuffer()
		g.normUsed = 0
	}
	v := g.normBuf[g.normUsed]
	g.normUsed++
	return v
}

// Exp returns a sample approximately distributed as Exp(1).
func (g *Generator) Exp() float64 {
	if g.expoUsed == 0 || g.expoUsed >= len(g.expoBuf) {
		g.refillExpoBuffer()
		g.expoUsed = 0
	}
	v := g.expoBuf[g.expoUsed]
	g.expoUsed++
	return v
}

// uniformPrivate serves from the internal uniform pool, fed by particle
// positions rather than a collision event. It uses the same serve
// policy as the public samplers.
func (g *Generator) uniformPrivate() float64 {
	if g.unipUsed == 0 || g.unipUsed >= len(g.unipBuf) {
		g.refillUnipBuffer()
		g.unipUsed = 0
	}
	v := g.unipBuf[g.unipUsed]
	g.unipUsed++
	return v
}

// refreshUnipPool advances every particle's position once the internal
// uniform pool has been drawn from max times, desynchronizing the pool
// from the particles it was last derived from.
func (g *Generator) refreshUnipPool() {
	if g.unipBuffersFilled >= g.maxUnipBuffersFilled {
		g.state.UpdateAllPos(g.dt)
		g.unipBuffersFilled = 0
	}
}

// refillUnipBuffer copies the position coordinates of the next two
// particles in index order into the internal uniform buffer.
func (g *Generator) refillUnipBuffer() {
	g.refreshUnipPool()

	a := 2 * g.unipBuffersFilled
	b := a + 1
	g.unipBuffersFilled++

	pa := g.state.Pos(a)
	pb := g.state.Pos(b)
	g.unipBuf = [6]float64{pa[0], pa[1], pa[2], pb[0], pb[1], pb[2]}
}

// refreshRandRotMatrixParams draws a fresh collision rotation matrix
// from a random triplet of Eulerian angles.
func (g *Generator) refreshRandRotMatrixParams() {
	alpha := 2 * math.Pi * g.uniformPrivate()
	theta := math.Pi * g.uniformPrivate()
	phi := 2 * math.Pi * g.uniformPrivate()

	axis := vecmath.NewVec3(
		math.Sin(theta)*math.Cos(phi),
		math.Sin(theta)*math.Sin(phi),
		math.Cos(theta),
	)
	g.rot = vecmath.NewRotation(axis, alpha)
}

// refreshRandPairSelectParams draws a fresh (start, shift, jump) triplet
// for the collision pair selection scheme.
func (g *Generator) refreshRandPairSelectParams() {
	num := g.state.NumParticles()

	u1 := g.uniformPrivate()
	u2 := g.uniformPrivate()
	u3 := g.uniformPrivate()

	g.start = int(u1 * float64(num))
	g.shift = int(u2*(float64(num)/float64(g.maxPairsCollided-1)-1)) + 1
	g.jump = int(u3*float64(num-1)) + 1
}

// refreshRandParams rolls over to a new rotation matrix and pair
// selection scheme once the current one has served maxPairsCollided
// collisions.
func (g *Generator) refreshRandParams() {
	if g.pairsCollided >= g.maxPairsCollided {
		g.refreshRandRotMatrixParams()
		g.refreshRandPairSelectParams()
		g.pairsCollided = 0
	}
}

// refreshCollisionPair computes the next collision pair from the
// current (start, shift, jump) scheme, using a single conditional
// subtract in place of a full modulo (valid because shift and jump are
// bounded so idxA and idxB never exceed 2*num).
func (g *Generator) refreshCollisionPair() {
	num := g.state.NumParticles()

	idxA := g.start + g.pairsCollided*g.shift
	if idxA >= num {
		idxA -= num
	}

	idxB := idxA + g.jump
	if idxB >= num {
		idxB -= num
	}

	g.idxA, g.idxB = idxA, idxB
}

// refillUnifBuffer collides the next pair, moving both particles, and
// copies their post-collision position coordinates into the public
// uniform buffer.
func (g *Generator) refillUnifBuffer() {
	g.refreshRandParams()
	g.refreshCollisionPair()
	g.state.Update(g.rot, g.idxA, g.idxB, true, g.dt)
	g.pairsCollided++

	pa := g.state.Pos(g.idxA)
	pb := g.state.Pos(g.idxB)
	g.unifBuf = [6]float64{pa[0], pa[1], pa[2], pb[0], pb[1], pb[2]}
}

// refillNormBuffer collides the next pair, without moving either
// particle, and copies half their post-collision relative velocity into
// the Gaussian buffer.
func (g *Generator) refillNormBuffer() {
	g.refreshRandParams()
	g.refreshCollisionPair()
	g.state.Update(g.rot, g.idxA, g.idxB, false, 0)
	g.pairsCollided++

	va := g.state.Vel(g.idxA)
	vb := g.state.Vel(g.idxB)
	v := va.Sub(vb).Mul(0.5)
	g.normBuf = [3]float64{v[0], v[1], v[2]}
}

// refillExpoBuffer collides the next pair, without moving either
// particle, and copies the pair's average per-axis kinetic energy into
// the exponential buffer.
func (g *Generator) refillExpoBuffer() {
	g.refreshRandParams()
	g.refreshCollisionPair()
	g.state.Update(g.rot, g.idxA, g.idxB, false, 0)
	g.pairsCollided++

	va := g.state.Vel(g.idxA)
	vb := g.state.Vel(g.idxB)
	g.expoBuf = [3]float64{
		0.25 * (va[0]*va[0] + vb[0]*vb[0]),
		0.25 * (va[1]*va[1] + vb[1]*vb[1]),
		0.25 * (va[2]*va[2] + vb[2]*vb[2]),
	}
}
