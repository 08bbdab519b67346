package enginetypes

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector or point.
// Unlike Vector3, its equality is exact.
type Vector2 struct {
	X, Y float32
}

// NewVector2 returns the vector (x, y). It is the decode entry point.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

var (
	Vector2Zero             = Vector2{0, 0}
	Vector2One              = Vector2{1, 1}
	Vector2Up               = Vector2{0, 1}
	Vector2Down             = Vector2{0, -1}
	Vector2Left             = Vector2{-1, 0}
	Vector2Right            = Vector2{1, 0}
	Vector2PositiveInfinity = Vector2{math32.Inf(1), math32.Inf(1)}
	Vector2NegativeInfinity = Vector2{math32.Inf(-1), math32.Inf(-1)}
)

// Component returns X for 0 and Y for 1.
func (v Vector2) Component(i int) (float32, error) {
	return component("Vector2", i, v.X, v.Y)
}

// SetComponent sets X for 0 and Y for 1.
func (v *Vector2) SetComponent(i int, value float32) error {
	return setComponent("Vector2", i, value, &v.X, &v.Y)
}

// Set assigns every component.
func (v *Vector2) Set(x, y float32) {
	v.X, v.Y = x, y
}

// ScaleVector2 multiplies a and b component-wise.
func ScaleVector2(a, b Vector2) Vector2 {
	return Vector2{a.X * b.X, a.Y * b.Y}
}

// Scale multiplies every component of v by the same component of scale.
func (v *Vector2) Scale(scale Vector2) {
	v.X *= scale.X
	v.Y *= scale.Y
}

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference of v and o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Neg returns v with every component negated.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// Mul returns v scaled by d.
func (v Vector2) Mul(d float32) Vector2 { return Vector2{v.X * d, v.Y * d} }

// Div returns v with every component divided by d.
func (v Vector2) Div(d float32) Vector2 { return Vector2{v.X / d, v.Y / d} }

// Equals reports whether v and o are exactly equal.
func (v Vector2) Equals(o Vector2) bool { return v.X == o.X && v.Y == o.Y }

// Eq reports whether v and o are equal. Vector2 compares exactly.
func (v Vector2) Eq(o Vector2) bool { return v.Equals(o) }

// Ne is the negation of Eq.
func (v Vector2) Ne(o Vector2) bool { return !v.Eq(o) }

// Vector3 returns v with Z set to 0.
func (v Vector2) Vector3() Vector3 { return Vector3{v.X, v.Y, 0} }

// String formats v with DefaultFormat.
func (v Vector2) String() string { return v.Text("") }

// Text formats every component of v with the numeric format string format.
func (v Vector2) Text(format string) string { return formatTuple(format, v.X, v.Y) }

// Format implements fmt.Formatter.
func (v Vector2) Format(f fmt.State, verb rune) {
	formatState(f, verb, "", v.X, v.Y)
}
