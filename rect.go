package enginetypes

import "strconv"

// Rect is a 2D rectangle from its minimum corner (X, Y).
// Width and Height are not checked; negative sizes are kept as given.
type Rect struct {
	X, Y, Width, Height float32
}

// NewRect returns the rectangle at (x, y) of the given size. It is the decode entry point.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromVectors returns the rectangle at position of the given size.
func NewRectFromVectors(position, size Vector2) Rect {
	return Rect{X: position.X, Y: position.Y, Width: size.X, Height: size.Y}
}

// NewRectFrom returns a copy of source.
func NewRectFrom(source Rect) Rect {
	return NewRect(source.X, source.Y, source.Width, source.Height)
}

// RectZero is the empty rectangle at the origin.
var RectZero = Rect{}

// Position returns the minimum corner of r.
func (r Rect) Position() Vector2 { return Vector2{r.X, r.Y} }

// Size returns Width and Height as a vector.
func (r Rect) Size() Vector2 { return Vector2{r.Width, r.Height} }

// Center returns the middle of r.
func (r Rect) Center() Vector2 { return Vector2{r.X + r.Width/2, r.Y + r.Height/2} }

// XMax returns the right edge.
func (r Rect) XMax() float32 { return r.X + r.Width }

// YMax returns the bottom edge.
func (r Rect) YMax() float32 { return r.Y + r.Height }

// Contains returns true if p is within the rectangle, including its minimum edges but not its maximum ones.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X < r.XMax() && p.Y >= r.Y && p.Y < r.YMax()
}

// Equals reports whether r and o are exactly equal.
func (r Rect) Equals(o Rect) bool { return r == o }

// String formats r as "(x:0.0, y:0.0, width:0.0, height:0.0)".
func (r Rect) String() string { return r.Text("") }

// Text is String with a numeric format.
func (r Rect) Text(format string) string {
	return "(x:" + FormatFloat(r.X, format) +
		", y:" + FormatFloat(r.Y, format) +
		", width:" + FormatFloat(r.Width, format) +
		", height:" + FormatFloat(r.Height, format) + ")"
}

// RectInt is a 2D rectangle of integer coordinates from its minimum corner (X, Y).
type RectInt struct {
	X, Y, Width, Height int32
}

// NewRectInt returns the rectangle at (x, y) of the given size. It is the decode entry point.
func NewRectInt(x, y, width, height int32) RectInt {
	return RectInt{X: x, Y: y, Width: width, Height: height}
}

// NewRectIntFromVectors returns the rectangle at position of the given size.
func NewRectIntFromVectors(position, size Vector2Int) RectInt {
	return RectInt{X: position.X, Y: position.Y, Width: size.X, Height: size.Y}
}

// NewRectIntFrom returns a copy of source.
func NewRectIntFrom(source RectInt) RectInt {
	return NewRectInt(source.X, source.Y, source.Width, source.Height)
}

// Position returns the minimum corner of r.
func (r RectInt) Position() Vector2Int { return Vector2Int{r.X, r.Y} }

// Size returns Width and Height as a vector.
func (r RectInt) Size() Vector2Int { return Vector2Int{r.Width, r.Height} }

// XMax returns the right edge.
func (r RectInt) XMax() int32 { return r.X + r.Width }

// YMax returns the bottom edge.
func (r RectInt) YMax() int32 { return r.Y + r.Height }

// Contains returns true if p is within the rectangle, including its minimum edges but not its maximum ones.
func (r RectInt) Contains(p Vector2Int) bool {
	return p.X >= r.X && p.X < r.XMax() && p.Y >= r.Y && p.Y < r.YMax()
}

// Equals reports whether r and o are exactly equal.
func (r RectInt) Equals(o RectInt) bool { return r == o }

// String formats r as "(x:0, y:0, width:0, height:0)".
func (r RectInt) String() string {
	return "(x:" + strconv.Itoa(int(r.X)) +
		", y:" + strconv.Itoa(int(r.Y)) +
		", width:" + strconv.Itoa(int(r.Width)) +
		", height:" + strconv.Itoa(int(r.Height)) + ")"
}

// RectOffset is padding or margins around a rectangle.
// It has no decode entry point; decoders assign its fields to a zero RectOffset.
type RectOffset struct {
	Left, Right, Top, Bottom int32
}

// NewRectOffset returns the offset with the given edges.
func NewRectOffset(left, right, top, bottom int32) RectOffset {
	return RectOffset{Left: left, Right: right, Top: top, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (o RectOffset) Horizontal() int32 { return o.Left + o.Right }

// Vertical returns Top + Bottom.
func (o RectOffset) Vertical() int32 { return o.Top + o.Bottom }

// String formats o as "RectOffset (l:0 r:0 t:0 b:0)".
func (o RectOffset) String() string {
	return "RectOffset (l:" + strconv.Itoa(int(o.Left)) +
		" r:" + strconv.Itoa(int(o.Right)) +
		" t:" + strconv.Itoa(int(o.Top)) +
		" b:" + strconv.Itoa(int(o.Bottom)) + ")"
}

// RangeInt is a run of Length integers from Start.
type RangeInt struct {
	Start, Length int32
}

// NewRangeInt returns the range of length integers from start. It is the decode entry point.
func NewRangeInt(start, length int32) RangeInt {
	return RangeInt{Start: start, Length: length}
}

// End returns Start + Length.
func (r RangeInt) End() int32 { return r.Start + r.Length }

// LayerMask is a bit set of layers.
type LayerMask struct {
	Value int32
}

// Has returns true if layer is in the mask.
func (m LayerMask) Has(layer int) bool {
	return layer >= 0 && layer < 32 && m.Value&(1<<uint(layer)) != 0
}

// String formats m as its value.
func (m LayerMask) String() string { return strconv.Itoa(int(m.Value)) }
