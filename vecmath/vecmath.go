// Package vecmath provides the 3-component vector and 3x3 matrix types
// shared by the particle gas and the Molecular Dice generator.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3-component real vector, used for both particle positions
// and particle velocities. It is mgl64.Vec3 directly: componentwise
// add/subtract, scalar multiply, and dot product are already exactly
// what spec.md calls for, with no wrapping needed.
type Vec3 = mgl64.Vec3

// NewVec3 builds a Vec3 from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// RotationMatrix is a 3x3 real matrix in row-major layout, applied to a
// Vec3 by the usual Σ R_ij·u_j contraction. Unlike Vec3 this is not
// borrowed from mgl64: the generator's rotation matrices carry an
// explicit 0.5 scale factor baked into every entry (see NewRotation),
// making them half-rotation operators rather than length-preserving
// rotations. That peculiarity is the generator's defining feature and
// must reproduce bit-for-bit, so the matrix keeps its own named fields
// instead of going through a general-purpose matrix type with a
// different storage and multiplication convention.
type RotationMatrix struct {
	Xx, Xy, Xz float64
	Yx, Yy, Yz float64
	Zx, Zy, Zz float64
}

// Rotate applies the matrix to u and returns the result.
func (r RotationMatrix) Rotate(u Vec3) Vec3 {
	return Vec3{
		r.Xx*u[0] + r.Xy*u[1] + r.Xz*u[2],
		r.Yx*u[0] + r.Yy*u[1] + r.Yz*u[2],
		r.Zx*u[0] + r.Zy*u[1] + r.Zz*u[2],
	}
}

// NewRotation builds the half-rotation matrix used by a collision event:
// a standard axis-angle rotation about axis by angle, every entry scaled
// by 0.5. axis must be a unit vector: no normalization is performed
// internally. Callers here always pass a unit vector built from
// spherical angles.
func NewRotation(axis Vec3, angle float64) RotationMatrix {
	nx, ny, nz := axis[0], axis[1], axis[2]
	c := math.Cos(angle)
	s := math.Sin(angle)

	return RotationMatrix{
		Xx: 0.5 * (nx*nx*(1-c) + c),
		Xy: 0.5 * (nx*ny*(1-c) - nz*s),
		Xz: 0.5 * (nx*nz*(1-c) + ny*s),

		Yx: 0.5 * (ny*nx*(1-c) + nz*s),
		Yy: 0.5 * (ny*ny*(1-c) + c),
		Yz: 0.5 * (ny*nz*(1-c) - nx*s),

		Zx: 0.5 * (nz*nx*(1-c) - ny*s),
		Zy: 0.5 * (nz*ny*(1-c) + nx*s),
		Zz: 0.5 * (nz*nz*(1-c) + c),
	}
}
