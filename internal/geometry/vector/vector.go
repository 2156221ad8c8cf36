// Package vector provides 3D vector operations
package vector

import (
	"fmt"
	"math"
)

// Tolerance is the magnitude below which a vector is treated as zero-length
// by Normalize, and the component size snapped to zero after normalizing.
const Tolerance = 1e-4

// Zero returns the zero vector
func Zero() Vec3 { return Vec3{} }

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a physical 3D vector. It is a plain value: assigning or
// passing it copies all three components.
type Vec3 struct{ X, Y, Z float64 }

// Copy returns an independent duplicate of v
func (v Vec3) Copy() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies a vector by a scalar
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Div divides a vector by a scalar. Dividing by zero follows IEEE-754.
func (v Vec3) Div(k float64) Vec3 { return Vec3{v.X / k, v.Y / k, v.Z / k} }

// Neg returns the vector with every component sign-flipped
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// AddInPlace adds o to v
func (v *Vec3) AddInPlace(o Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubInPlace subtracts o from v
func (v *Vec3) SubInPlace(o Vec3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// ScaleInPlace multiplies v by k
func (v *Vec3) ScaleInPlace(k float64) {
	v.X *= k
	v.Y *= k
	v.Z *= k
}

// DivInPlace divides v by k
func (v *Vec3) DivInPlace(k float64) {
	v.X /= k
	v.Y /= k
	v.Z /= k
}

// Reverse flips the sign of every component of v
func (v *Vec3) Reverse() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors. It is the zero vector
// when v and o are parallel.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// MagnitudeSquared returns the squared Euclidean norm
func (v Vec3) MagnitudeSquared() float64 { return v.Dot(v) }

// Magnitude returns the vector's Euclidean norm
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Normalize scales v to unit length in place.
//
// A vector whose magnitude is at most Tolerance is left as is instead of
// blowing up to Inf/NaN. Components smaller than Tolerance after the
// division are snapped to exactly zero.
func (v *Vec3) Normalize() {
	m := v.Magnitude()
	if m <= Tolerance {
		m = 1
	}
	v.DivInPlace(m)

	v.X = snap(v.X)
	v.Y = snap(v.Y)
	v.Z = snap(v.Z)
}

// Normalized returns a normalized copy of v
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// ApproxEqual reports whether every component of v is within tol of o
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func snap(c float64) float64 {
	if math.Abs(c) < Tolerance {
		return 0
	}
	return c
}
