package enginetypes

// Vector2Int is a 2D vector of integers. Equality is exact.
type Vector2Int struct {
	X, Y int32
}

// NewVector2Int returns the vector (x, y). It is the decode entry point.
func NewVector2Int(x, y int32) Vector2Int {
	return Vector2Int{X: x, Y: y}
}

var (
	Vector2IntZero  = Vector2Int{0, 0}
	Vector2IntOne   = Vector2Int{1, 1}
	Vector2IntUp    = Vector2Int{0, 1}
	Vector2IntDown  = Vector2Int{0, -1}
	Vector2IntLeft  = Vector2Int{-1, 0}
	Vector2IntRight = Vector2Int{1, 0}
)

// Component returns X for 0 and Y for 1.
func (v Vector2Int) Component(i int) (int32, error) {
	return component("Vector2Int", i, v.X, v.Y)
}

// SetComponent sets X for 0 and Y for 1.
func (v *Vector2Int) SetComponent(i int, value int32) error {
	return setComponent("Vector2Int", i, value, &v.X, &v.Y)
}

// Set assigns every component.
func (v *Vector2Int) Set(x, y int32) {
	v.X, v.Y = x, y
}

// ScaleVector2Int multiplies a and b component-wise.
func ScaleVector2Int(a, b Vector2Int) Vector2Int {
	return Vector2Int{a.X * b.X, a.Y * b.Y}
}

// Scale multiplies every component of v by the same component of scale.
func (v *Vector2Int) Scale(scale Vector2Int) {
	v.X *= scale.X
	v.Y *= scale.Y
}

// Add returns the component-wise sum of v and o.
func (v Vector2Int) Add(o Vector2Int) Vector2Int { return Vector2Int{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference of v and o.
func (v Vector2Int) Sub(o Vector2Int) Vector2Int { return Vector2Int{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by d.
func (v Vector2Int) Mul(d int32) Vector2Int { return Vector2Int{v.X * d, v.Y * d} }

// Equals reports whether v and o are exactly equal.
func (v Vector2Int) Equals(o Vector2Int) bool { return v == o }

// Eq is Equals; integer vectors compare exactly.
func (v Vector2Int) Eq(o Vector2Int) bool { return v == o }

// Ne is the negation of Eq.
func (v Vector2Int) Ne(o Vector2Int) bool { return v != o }

// Vector2 converts v to floats.
func (v Vector2Int) Vector2() Vector2 { return Vector2{float32(v.X), float32(v.Y)} }

// String formats v as "(x, y)".
func (v Vector2Int) String() string { return formatIntTuple(v.X, v.Y) }

// Vector3Int is a 3D vector of integers. Equality is exact.
type Vector3Int struct {
	X, Y, Z int32
}

// NewVector3Int returns the vector (x, y, z). It is the decode entry point.
func NewVector3Int(x, y, z int32) Vector3Int {
	return Vector3Int{X: x, Y: y, Z: z}
}

var (
	Vector3IntZero    = Vector3Int{0, 0, 0}
	Vector3IntOne     = Vector3Int{1, 1, 1}
	Vector3IntUp      = Vector3Int{0, 1, 0}
	Vector3IntDown    = Vector3Int{0, -1, 0}
	Vector3IntLeft    = Vector3Int{-1, 0, 0}
	Vector3IntRight   = Vector3Int{1, 0, 0}
	Vector3IntForward = Vector3Int{0, 0, 1}
	Vector3IntBack    = Vector3Int{0, 0, -1}
)

// Component returns X, Y or Z for 0, 1 or 2.
func (v Vector3Int) Component(i int) (int32, error) {
	return component("Vector3Int", i, v.X, v.Y, v.Z)
}

// SetComponent sets X, Y or Z for 0, 1 or 2.
func (v *Vector3Int) SetComponent(i int, value int32) error {
	return setComponent("Vector3Int", i, value, &v.X, &v.Y, &v.Z)
}

// Set assigns every component.
func (v *Vector3Int) Set(x, y, z int32) {
	v.X, v.Y, v.Z = x, y, z
}

// ScaleVector3Int multiplies a and b component-wise.
func ScaleVector3Int(a, b Vector3Int) Vector3Int {
	return Vector3Int{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale multiplies every component of v by the same component of scale.
func (v *Vector3Int) Scale(scale Vector3Int) {
	v.X *= scale.X
	v.Y *= scale.Y
	v.Z *= scale.Z
}

// Add returns the component-wise sum of v and o.
func (v Vector3Int) Add(o Vector3Int) Vector3Int { return Vector3Int{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference of v and o.
func (v Vector3Int) Sub(o Vector3Int) Vector3Int { return Vector3Int{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled by d.
func (v Vector3Int) Mul(d int32) Vector3Int { return Vector3Int{v.X * d, v.Y * d, v.Z * d} }

// Equals reports whether v and o are exactly equal.
func (v Vector3Int) Equals(o Vector3Int) bool { return v == o }

// Eq is Equals; integer vectors compare exactly.
func (v Vector3Int) Eq(o Vector3Int) bool { return v == o }

// Ne is the negation of Eq.
func (v Vector3Int) Ne(o Vector3Int) bool { return v != o }

// Vector3 converts v to floats.
func (v Vector3Int) Vector3() Vector3 { return Vector3{float32(v.X), float32(v.Y), float32(v.Z)} }

// String formats v as "(x, y, z)".
func (v Vector3Int) String() string { return formatIntTuple(v.X, v.Y, v.Z) }
