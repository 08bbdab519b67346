package enginetypes

// Bounds is an axis-aligned box.
//
// It stores Center and Extents, half the box's size. Size is derived, and it is Size,
// not Extents, that is carried on the wire; decoding recomputes Extents from it.
type Bounds struct {
	Center  Vector3
	Extents Vector3
}

// NewBounds returns the box centred on center with the given size. It is the decode entry point.
func NewBounds(center, size Vector3) Bounds {
	return Bounds{
		Center:  center,
		Extents: size.Mul(0.5),
	}
}

// Size returns Extents * 2.
func (b Bounds) Size() Vector3 {
	return b.Extents.Mul(2)
}

// SetSize sets Extents to size * 0.5.
func (b *Bounds) SetSize(size Vector3) {
	b.Extents = size.Mul(0.5)
}

// Min returns Center - Extents.
func (b Bounds) Min() Vector3 { return b.Center.Sub(b.Extents) }

// Max returns Center + Extents.
func (b Bounds) Max() Vector3 { return b.Center.Add(b.Extents) }

// Contains returns true if p is inside or on the box.
func (b Bounds) Contains(p Vector3) bool {
	min, max := b.Min(), b.Max()
	return p.X >= min.X && p.X <= max.X &&
		p.Y >= min.Y && p.Y <= max.Y &&
		p.Z >= min.Z && p.Z <= max.Z
}

// Eq compares Center and Extents with Vector3.Eq.
func (b Bounds) Eq(o Bounds) bool {
	return b.Center.Eq(o.Center) && b.Extents.Eq(o.Extents)
}

// Ne is the negation of Eq.
func (b Bounds) Ne(o Bounds) bool { return !b.Eq(o) }

// Equals compares Center and Extents exactly.
func (b Bounds) Equals(o Bounds) bool {
	return b.Center.Equals(o.Center) && b.Extents.Equals(o.Extents)
}

// String formats b as "Center: (x, y, z), Extents: (x, y, z)".
func (b Bounds) String() string { return b.Text("") }

// Text is String with a numeric format.
func (b Bounds) Text(format string) string {
	return "Center: " + b.Center.Text(format) + ", Extents: " + b.Extents.Text(format)
}

// BoundsInt is an axis-aligned box of integer coordinates.
// Position is its minimum corner; both fields are stored and carried on the wire.
type BoundsInt struct {
	Position Vector3Int
	Size     Vector3Int
}

// NewBoundsInt returns the box at position with the given size. It is the decode entry point.
func NewBoundsInt(position, size Vector3Int) BoundsInt {
	return BoundsInt{Position: position, Size: size}
}

// Min returns the smallest corner, Position.
func (b BoundsInt) Min() Vector3Int { return b.Position }

// Max returns the corner opposite Min.
func (b BoundsInt) Max() Vector3Int { return b.Position.Add(b.Size) }

// Center returns the middle of the box.
func (b BoundsInt) Center() Vector3 {
	return b.Position.Vector3().Add(b.Size.Vector3().Div(2))
}

// Equals reports whether b and o are exactly equal.
func (b BoundsInt) Equals(o BoundsInt) bool { return b == o }

// String formats b as "Position: (x, y, z), Size: (x, y, z)".
func (b BoundsInt) String() string {
	return "Position: " + b.Position.String() + ", Size: " + b.Size.String()
}
