package enginetypes

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// Color is an RGBA color with float components, nominally in [0, 1].
// Nothing clamps them; arithmetic and interpolation may leave the range.
type Color struct {
	R, G, B, A float32
}

// NewColor returns the color (r, g, b, a). It is the decode entry point.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorRGB returns the opaque color (r, g, b, 1).
func NewColorRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

var (
	ColorRed     = Color{1, 0, 0, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorBlue    = Color{0, 0, 1, 1}
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorYellow  = Color{1, 0.921568632, 0.0156862754, 1}
	ColorCyan    = Color{0, 1, 1, 1}
	ColorMagenta = Color{1, 0, 1, 1}
	ColorGray    = Color{0.5, 0.5, 0.5, 1}
	ColorGrey    = ColorGray
	ColorClear   = Color{0, 0, 0, 0}
)

// Component returns R, G, B or A for 0, 1, 2 or 3.
func (c Color) Component(i int) (float32, error) {
	return component("Color", i, c.R, c.G, c.B, c.A)
}

// SetComponent sets R, G, B or A for 0, 1, 2 or 3.
func (c *Color) SetComponent(i int, value float32) error {
	return setComponent("Color", i, value, &c.R, &c.G, &c.B, &c.A)
}

// Add returns the component-wise sum of c and o.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A} }

// Sub returns the component-wise difference of c and o.
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A} }

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A} }

// Scaled multiplies every component, alpha included, by b.
func (c Color) Scaled(b float32) Color { return Color{c.R * b, c.G * b, c.B * b, c.A * b} }

// Div divides every component, alpha included, by b.
func (c Color) Div(b float32) Color { return Color{c.R / b, c.G / b, c.B / b, c.A / b} }

// Equals returns true if every component of c and o is exactly equal.
func (c Color) Equals(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// Eq treats colors as 4D vectors and uses Vector4.Eq.
func (c Color) Eq(o Color) bool { return c.Vector4().Eq(o.Vector4()) }

// Ne is the negation of Eq.
func (c Color) Ne(o Color) bool { return !c.Eq(o) }

// ColorLerp interpolates from a to b by t clamped to [0, 1].
func ColorLerp(a, b Color, t float32) Color {
	return ColorLerpUnclamped(a, b, clamp01(t))
}

// ColorLerpUnclamped interpolates from a to b by t, extrapolating when t is outside [0, 1].
func ColorLerpUnclamped(a, b Color, t float32) Color {
	return Color{
		lerpUnclamped(a.R, b.R, t),
		lerpUnclamped(a.G, b.G, t),
		lerpUnclamped(a.B, b.B, t),
		lerpUnclamped(a.A, b.A, t),
	}
}

// rgbMultiplied scales the color channels by m, leaving alpha.
func (c Color) rgbMultiplied(m float32) Color { return Color{c.R * m, c.G * m, c.B * m, c.A} }

// rgbMultipliedColor multiplies the color channels by those of m, leaving alpha.
func (c Color) rgbMultipliedColor(m Color) Color { return Color{c.R * m.R, c.G * m.G, c.B * m.B, c.A} }

// alphaMultiplied scales alpha by m.
func (c Color) alphaMultiplied(m float32) Color { return Color{c.R, c.G, c.B, c.A * m} }

// alphaMultipliedColor scales alpha by the alpha of m.
func (c Color) alphaMultipliedColor(m Color) Color { return Color{c.R, c.G, c.B, c.A * m.A} }

// Vector4 returns (R, G, B, A).
func (c Color) Vector4() Vector4 { return Vector4{c.R, c.G, c.B, c.A} }

// ColorFromVector4 returns the color (v.X, v.Y, v.Z, v.W).
func ColorFromVector4(v Vector4) Color { return Color{v.X, v.Y, v.Z, v.W} }

// Color32 clamps every channel to [0, 1] and scales it to a byte, rounding half to even.
func (c Color) Color32() Color32 {
	return Color32{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(f float32) uint8 {
	return uint8(math32.RoundToEven(clamp01(f) * 255))
}

// String formats c as "RGBA(r, g, b, a)" with three fractional digits.
func (c Color) String() string { return c.Text("F3") }

// Text formats c as "RGBA(r, g, b, a)" with a numeric format.
func (c Color) Text(format string) string {
	return "RGBA" + formatTuple(format, c.R, c.G, c.B, c.A)
}

// Format implements fmt.Formatter.
func (c Color) Format(f fmt.State, verb rune) {
	if verb == 'v' || verb == 's' {
		fmt.Fprint(f, c.String())
		return
	}
	formatState(f, verb, "RGBA", c.R, c.G, c.B, c.A)
}

// Color32 is an RGBA color with byte components.
type Color32 struct {
	R, G, B, A uint8
}

// NewColor32 returns the color (r, g, b, a). It is the decode entry point.
func NewColor32(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// Color divides every channel by 255.
func (c Color32) Color() Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// ColorLerp32 interpolates from a to b by t clamped to [0, 1].
func ColorLerp32(a, b Color32, t float32) Color32 {
	return ColorLerp32Unclamped(a, b, clamp01(t))
}

// ColorLerp32Unclamped interpolates every channel from a to b by t, truncating toward zero.
// Results outside [0, 255] wrap.
func ColorLerp32Unclamped(a, b Color32, t float32) Color32 {
	lerp := func(a, b uint8) uint8 {
		return uint8(int32(float32(a) + float32(int32(b)-int32(a))*t))
	}
	return Color32{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// String formats c as "RGBA(r, g, b, a)".
func (c Color32) String() string {
	return "RGBA(" +
		strconv.Itoa(int(c.R)) + ", " +
		strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " +
		strconv.Itoa(int(c.A)) + ")"
}
