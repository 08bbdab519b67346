package enginetypes

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

const (
	// Vector3Epsilon is the magnitude below which Normalized returns the zero vector.
	Vector3Epsilon = 1e-5
	// EpsilonNormalSqrt is the smallest vector length product Vector3Angle measures.
	EpsilonNormalSqrt = 1e-15

	// vector3EqThreshold is Vector3Epsilon squared, as the engine rounds it.
	vector3EqThreshold = 9.99999943962493e-11
	// smallestFloat32 is the engine's Mathf.Epsilon.
	smallestFloat32 = math.SmallestNonzeroFloat32
)

// Vector3 is a 3D vector or point.
//
// Eq, the engine's == operator, treats vectors closer than Vector3Epsilon as equal.
// Equals compares exactly.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns the vector (x, y, z). It is the decode entry point.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

var (
	Vector3Zero             = Vector3{0, 0, 0}
	Vector3One              = Vector3{1, 1, 1}
	Vector3Up               = Vector3{0, 1, 0}
	Vector3Down             = Vector3{0, -1, 0}
	Vector3Left             = Vector3{-1, 0, 0}
	Vector3Right            = Vector3{1, 0, 0}
	Vector3Forward          = Vector3{0, 0, 1}
	Vector3Back             = Vector3{0, 0, -1}
	Vector3PositiveInfinity = Vector3{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	Vector3NegativeInfinity = Vector3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
)

// Component returns X, Y or Z for 0, 1 or 2.
func (v Vector3) Component(i int) (float32, error) {
	return component("Vector3", i, v.X, v.Y, v.Z)
}

// SetComponent sets X, Y or Z for 0, 1 or 2.
func (v *Vector3) SetComponent(i int, value float32) error {
	return setComponent("Vector3", i, value, &v.X, &v.Y, &v.Z)
}

// Set assigns every component.
func (v *Vector3) Set(x, y, z float32) {
	v.X, v.Y, v.Z = x, y, z
}

// ScaleVector3 multiplies a and b component-wise.
func ScaleVector3(a, b Vector3) Vector3 {
	return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale multiplies every component of v by the same component of scale.
func (v *Vector3) Scale(scale Vector3) {
	v.X *= scale.X
	v.Y *= scale.Y
	v.Z *= scale.Z
}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference of v and o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns v with every component negated.
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Mul returns v scaled by d.
func (v Vector3) Mul(d float32) Vector3 { return Vector3{v.X * d, v.Y * d, v.Z * d} }

// Div returns v with every component divided by d.
func (v Vector3) Div(d float32) Vector3 { return Vector3{v.X / d, v.Y / d, v.Z / d} }

// Equals returns true if every component of v and o is exactly equal.
func (v Vector3) Equals(o Vector3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Eq returns true if the squared distance between v and o is below 9.99999943962493e-11.
// The differences are taken in float32 and squared and summed in float64.
func (v Vector3) Eq(o Vector3) bool {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return float64(dx)*float64(dx)+float64(dy)*float64(dy)+float64(dz)*float64(dz) < vector3EqThreshold
}

// Ne is !Eq.
func (v Vector3) Ne(o Vector3) bool { return !v.Eq(o) }

// Vector2 drops Z.
func (v Vector3) Vector2() Vector2 { return Vector2{v.X, v.Y} }

// SqrMagnitude returns the squared length of v.
func (v Vector3) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of v.
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.SqrMagnitude())
}

// Normalized returns v with a magnitude of 1, or the zero vector if v is shorter than Vector3Epsilon.
func (v Vector3) Normalized() Vector3 {
	mag := v.Magnitude()
	if mag > Vector3Epsilon {
		return v.Div(mag)
	}
	return Vector3Zero
}

// Vector3Dot returns the dot product of a and b.
func Vector3Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Vector3Cross returns the cross product of a and b.
func Vector3Cross(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Vector3Project projects v onto onNormal.
// It returns the zero vector if onNormal has no length.
func Vector3Project(v, onNormal Vector3) Vector3 {
	sqrMag := Vector3Dot(onNormal, onNormal)
	if sqrMag < smallestFloat32 {
		return Vector3Zero
	}
	return onNormal.Mul(Vector3Dot(v, onNormal)).Div(sqrMag)
}

// Vector3ProjectOnPlane projects v onto the plane through the origin with normal planeNormal.
// It returns v unchanged if planeNormal has no length.
func Vector3ProjectOnPlane(v, planeNormal Vector3) Vector3 {
	sqrMag := Vector3Dot(planeNormal, planeNormal)
	if sqrMag < smallestFloat32 {
		return v
	}
	return v.Sub(planeNormal.Mul(Vector3Dot(v, planeNormal)).Div(sqrMag))
}

// Vector3Angle returns the unsigned angle in degrees between from and to, in [0, 180].
// It returns 0 when either vector is too short to have a direction.
func Vector3Angle(from, to Vector3) float32 {
	denominator := math32.Sqrt(from.SqrMagnitude() * to.SqrMagnitude())
	if denominator < EpsilonNormalSqrt {
		return 0
	}
	dot := clamp(Vector3Dot(from, to)/denominator, -1, 1)
	return math32.Acos(dot) * rad2Deg
}

// Vector3SignedAngle returns the angle in degrees between from and to, in [-180, 180].
// The sign is the direction of the rotation from from to to about axis.
func Vector3SignedAngle(from, to, axis Vector3) float32 {
	angle := Vector3Angle(from, to)
	if Vector3Dot(axis, Vector3Cross(from, to)) < 0 {
		return -angle
	}
	return angle
}

// Vector3Distance returns the distance between a and b.
func Vector3Distance(a, b Vector3) float32 {
	return a.Sub(b).Magnitude()
}

// String formats v with DefaultFormat.
func (v Vector3) String() string { return v.Text("") }

// Text formats v with a numeric format, e.g. "F3".
func (v Vector3) Text(format string) string { return formatTuple(format, v.X, v.Y, v.Z) }

// Format implements fmt.Formatter.
func (v Vector3) Format(f fmt.State, verb rune) {
	formatState(f, verb, "", v.X, v.Y, v.Z)
}
