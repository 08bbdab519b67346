package enginetypes

import "fmt"

// Vector4 is a 4D vector. Eq uses the same squared distance test as Vector3.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 returns the vector (x, y, z, w). It is the decode entry point.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

var (
	Vector4Zero = Vector4{0, 0, 0, 0}
	Vector4One  = Vector4{1, 1, 1, 1}
)

// Component returns X, Y, Z or W for 0, 1, 2 or 3.
func (v Vector4) Component(i int) (float32, error) {
	return component("Vector4", i, v.X, v.Y, v.Z, v.W)
}

// SetComponent sets X, Y, Z or W for 0, 1, 2 or 3.
func (v *Vector4) SetComponent(i int, value float32) error {
	return setComponent("Vector4", i, value, &v.X, &v.Y, &v.Z, &v.W)
}

// Set assigns every component.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X, v.Y, v.Z, v.W = x, y, z, w
}

// ScaleVector4 multiplies a and b component-wise.
func ScaleVector4(a, b Vector4) Vector4 {
	return Vector4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Scale multiplies every component of v by the same component of scale.
func (v *Vector4) Scale(scale Vector4) {
	v.X *= scale.X
	v.Y *= scale.Y
	v.Z *= scale.Z
	v.W *= scale.W
}

// Add returns the component-wise sum of v and o.
func (v Vector4) Add(o Vector4) Vector4 { return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns the component-wise difference of v and o.
func (v Vector4) Sub(o Vector4) Vector4 { return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Neg returns v with every component negated.
func (v Vector4) Neg() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

// Mul returns v scaled by d.
func (v Vector4) Mul(d float32) Vector4 { return Vector4{v.X * d, v.Y * d, v.Z * d, v.W * d} }

// Div returns v with every component divided by d.
func (v Vector4) Div(d float32) Vector4 { return Vector4{v.X / d, v.Y / d, v.Z / d, v.W / d} }

// Equals reports whether v and o are exactly equal.
func (v Vector4) Equals(o Vector4) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

// Eq reports whether v and o are closer than the Vector3 equality threshold.
func (v Vector4) Eq(o Vector4) bool { return sqrDistance4(v.X, v.Y, v.Z, v.W, o.X, o.Y, o.Z, o.W) < vector3EqThreshold }

// Ne is the negation of Eq.
func (v Vector4) Ne(o Vector4) bool { return !v.Eq(o) }

// sqrDistance4 is the squared distance between two 4-tuples, differenced in float32 and summed in float64.
func sqrDistance4(ax, ay, az, aw, bx, by, bz, bw float32) float64 {
	dx, dy, dz, dw := ax-bx, ay-by, az-bz, aw-bw
	return float64(dx)*float64(dx) + float64(dy)*float64(dy) + float64(dz)*float64(dz) + float64(dw)*float64(dw)
}

// String formats v with DefaultFormat.
func (v Vector4) String() string { return v.Text("") }

// Text formats every component of v with the numeric format string format.
func (v Vector4) Text(format string) string { return formatTuple(format, v.X, v.Y, v.Z, v.W) }

// Format implements fmt.Formatter.
func (v Vector4) Format(f fmt.State, verb rune) {
	formatState(f, verb, "", v.X, v.Y, v.Z, v.W)
}
