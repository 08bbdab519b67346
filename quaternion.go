package enginetypes

import "fmt"

// quaternionEqThreshold is the dot product above which two rotations are Eq, about 0.081 degrees apart.
const quaternionEqThreshold = 0.999998986721039

// Quaternion is a rotation.
//
// Eq compares rotations by their dot product, not their components. It does not normalize,
// so a zero quaternion is not Eq to anything, and -q, the same rotation as q, is not Eq to q.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion returns the quaternion (x, y, z, w). It is the decode entry point.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionIdentity is no rotation.
var QuaternionIdentity = Quaternion{0, 0, 0, 1}

// Component returns X, Y, Z or W for 0, 1, 2 or 3.
func (q Quaternion) Component(i int) (float32, error) {
	return component("Quaternion", i, q.X, q.Y, q.Z, q.W)
}

// SetComponent sets X, Y, Z or W for 0, 1, 2 or 3.
func (q *Quaternion) SetComponent(i int, value float32) error {
	return setComponent("Quaternion", i, value, &q.X, &q.Y, &q.Z, &q.W)
}

// Set assigns every component.
func (q *Quaternion) Set(x, y, z, w float32) {
	q.X, q.Y, q.Z, q.W = x, y, z, w
}

// QuaternionDot returns the dot product of a and b, summed in float64.
func QuaternionDot(a, b Quaternion) float32 {
	return float32(float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y) + float64(a.Z)*float64(b.Z) + float64(a.W)*float64(b.W))
}

// Eq returns true if q and o are the same rotation within about 0.081 degrees,
// with the quirks described on Quaternion.
func (q Quaternion) Eq(o Quaternion) bool {
	return float64(QuaternionDot(q, o)) > quaternionEqThreshold
}

// Ne is the negation of Eq.
func (q Quaternion) Ne(o Quaternion) bool { return !q.Eq(o) }

// Equals returns true if every component of q and o is exactly equal.
func (q Quaternion) Equals(o Quaternion) bool {
	return q.X == o.X && q.Y == o.Y && q.Z == o.Z && q.W == o.W
}

// String formats q with DefaultFormat.
func (q Quaternion) String() string { return q.Text("") }

// Text formats q with a numeric format, e.g. "F5".
func (q Quaternion) Text(format string) string { return formatTuple(format, q.X, q.Y, q.Z, q.W) }

// Format implements fmt.Formatter.
func (q Quaternion) Format(f fmt.State, verb rune) {
	formatState(f, verb, "", q.X, q.Y, q.Z, q.W)
}
