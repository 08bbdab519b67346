package enginetypes

import "strings"

// Matrix4x4 is a 4x4 transform matrix; Mrc is the element at row r and column c.
// It is storage only. On the wire its elements are keyed column by column, M00 at 0 and M33 at 15.
type Matrix4x4 struct {
	M00, M01, M02, M03 float32
	M10, M11, M12, M13 float32
	M20, M21, M22, M23 float32
	M30, M31, M32, M33 float32
}

var (
	Matrix4x4Zero     = Matrix4x4{}
	Matrix4x4Identity = Matrix4x4{
		M00: 1,
		M11: 1,
		M22: 1,
		M33: 1,
	}
)

// At returns the element at row and col, or ErrIndexOutOfRange.
func (m Matrix4x4) At(row, col int) (float32, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0, indexError("Matrix4x4", row*4+col)
	}
	return component("Matrix4x4", col*4+row, m.columnMajor()...)
}

func (m Matrix4x4) columnMajor() []float32 {
	return []float32{
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33,
	}
}

// Equals reports whether m and o are exactly equal.
func (m Matrix4x4) Equals(o Matrix4x4) bool { return m == o }

// String formats m as four tab separated rows, each element with five fractional digits.
func (m Matrix4x4) String() string {
	var sb strings.Builder
	rows := [4][4]float32{
		{m.M00, m.M01, m.M02, m.M03},
		{m.M10, m.M11, m.M12, m.M13},
		{m.M20, m.M21, m.M22, m.M23},
		{m.M30, m.M31, m.M32, m.M33},
	}
	for _, row := range rows {
		for i, e := range row {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(FormatFloat(e, "F5"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
