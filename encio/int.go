package encio

import (
	"io"
	"math"
)

// NewUint32 returns a Uint32.
func NewUint32() Uint32 {
	return Uint32{
		buff: make([]byte, 4),
	}
}

// Uint32 provides methods for encoding and decoding little-endian uint32s.
type Uint32 struct {
	buff []byte
}

// Encode writes the given uint32 to w.
func (e *Uint32) Encode(w io.Writer, n uint32) error {
	EncodeUint32(e.buff, n)
	return Write(e.buff, w)
}

// Decode decodes a uint32 from r.
func (e *Uint32) Decode(r io.Reader) (uint32, error) {
	err := Read(e.buff, r)
	return DecodeUint32(e.buff), err
}

// EncodeUint32 writes a uint32 to buff.
func EncodeUint32(buff []byte, n uint32) {
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// DecodeUint32 reads a uint32 from buff.
func DecodeUint32(buff []byte) uint32 {
	n := uint32(buff[0])
	n |= uint32(buff[1]) << 8
	n |= uint32(buff[2]) << 16
	n |= uint32(buff[3]) << 24
	return n
}

// NewUint64 returns a Uint64.
func NewUint64() Uint64 {
	return Uint64{
		buff: make([]byte, 8),
	}
}

// Uint64 provides methods for encoding and decoding little-endian uint64s.
type Uint64 struct {
	buff []byte
}

// Encode writes the given uint64 to w.
func (e *Uint64) Encode(w io.Writer, n uint64) error {
	EncodeUint32(e.buff, uint32(n))
	EncodeUint32(e.buff[4:], uint32(n>>32))
	return Write(e.buff, w)
}

// Decode decodes a uint64 from r.
func (e *Uint64) Decode(r io.Reader) (uint64, error) {
	err := Read(e.buff, r)
	return uint64(DecodeUint32(e.buff)) | uint64(DecodeUint32(e.buff[4:]))<<32, err
}

// Float32 encodes float32s as their little-endian IEEE 754 bits.
// NaN payloads and signed zeros survive the trip.
type Float32 struct {
	u Uint32
}

// NewFloat32 returns a Float32.
func NewFloat32() Float32 {
	return Float32{u: NewUint32()}
}

// Encode writes f to w.
func (e *Float32) Encode(w io.Writer, f float32) error {
	return e.u.Encode(w, math.Float32bits(f))
}

// Decode reads a float32 from r.
func (e *Float32) Decode(r io.Reader) (float32, error) {
	bits, err := e.u.Decode(r)
	return math.Float32frombits(bits), err
}

// Float64 encodes float64s as their little-endian IEEE 754 bits.
type Float64 struct {
	u Uint64
}

// NewFloat64 returns a Float64.
func NewFloat64() Float64 {
	return Float64{u: NewUint64()}
}

// Encode writes f to w.
func (e *Float64) Encode(w io.Writer, f float64) error {
	return e.u.Encode(w, math.Float64bits(f))
}

// Decode reads a float64 from r.
func (e *Float64) Decode(r io.Reader) (float64, error) {
	bits, err := e.u.Decode(r)
	return math.Float64frombits(bits), err
}

// ZigZag maps signed integers to unsigned so small magnitudes of either sign stay small.
// 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3 ...
func ZigZag(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// UnZigZag reverses ZigZag.
func UnZigZag(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}
