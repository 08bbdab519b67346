package codec

// Number type encoders

import (
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/stewi1014/enginetypes/encio"
)

// NewFloat32 returns a new float32 Encodable.
func NewFloat32(ty reflect.Type) *Float32 {
	if ty.Kind() != reflect.Float32 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of float32 kind", ty), 0))
	}
	return &Float32{
		ty:  ty,
		enc: encio.NewFloat32(),
	}
}

// Float32 is an Encodable for float32s. They are written as 4 little-endian IEEE 754 bytes.
type Float32 struct {
	ty  reflect.Type
	enc encio.Float32
}

// Type implements Encodable.
func (e *Float32) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Float32) Encode(v reflect.Value, w io.Writer) error {
	return e.enc.Encode(w, float32(v.Float()))
}

// Decode implements Encodable.
func (e *Float32) Decode(r io.Reader) (reflect.Value, error) {
	f, err := e.enc.Decode(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	v := reflect.New(e.ty).Elem()
	v.SetFloat(float64(f))
	return v, nil
}

// NewFloat64 returns a new float64 Encodable.
func NewFloat64(ty reflect.Type) *Float64 {
	if ty.Kind() != reflect.Float64 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of float64 kind", ty), 0))
	}
	return &Float64{
		ty:  ty,
		enc: encio.NewFloat64(),
	}
}

// Float64 is an Encodable for float64s. They are written as 8 little-endian IEEE 754 bytes.
type Float64 struct {
	ty  reflect.Type
	enc encio.Float64
}

// Type implements Encodable.
func (e *Float64) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Float64) Encode(v reflect.Value, w io.Writer) error {
	return e.enc.Encode(w, v.Float())
}

// Decode implements Encodable.
func (e *Float64) Decode(r io.Reader) (reflect.Value, error) {
	f, err := e.enc.Decode(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	v := reflect.New(e.ty).Elem()
	v.SetFloat(f)
	return v, nil
}

// NewInt returns a new Encodable for signed integers up to 32 bits.
// Enumerations are encoded with it; always by their underlying value, never by name.
func NewInt(ty reflect.Type) *Int {
	switch ty.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
	default:
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a signed integer of at most 32 bits", ty), 0))
	}
	return &Int{ty: ty}
}

// Int is an Encodable for signed integers, written as zig-zag variable-length integers.
type Int struct {
	ty  reflect.Type
	enc encio.Varint
}

// Type implements Encodable.
func (e *Int) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Int) Encode(v reflect.Value, w io.Writer) error {
	n := v.Int()
	if n < math.MinInt32 || n > math.MaxInt32 {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v value %v does not fit in 32 bits", e.ty, n), 0)
	}
	return e.enc.Encode(w, int32(n))
}

// Decode implements Encodable.
func (e *Int) Decode(r io.Reader) (reflect.Value, error) {
	n, err := e.enc.Decode(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	v := reflect.New(e.ty).Elem()
	if v.OverflowInt(int64(n)) {
		return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("%v overflows %v", n, e.ty), 0)
	}
	v.SetInt(int64(n))
	return v, nil
}

// NewUint8 returns a new uint8 Encodable.
func NewUint8(ty reflect.Type) *Uint8 {
	if ty.Kind() != reflect.Uint8 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of uint8 kind", ty), 0))
	}
	return &Uint8{
		ty:   ty,
		buff: make([]byte, 1),
	}
}

// Uint8 is an Encodable for uint8s, written as a single byte.
type Uint8 struct {
	ty   reflect.Type
	buff []byte
}

// Type implements Encodable.
func (e *Uint8) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Uint8) Encode(v reflect.Value, w io.Writer) error {
	e.buff[0] = uint8(v.Uint())
	return encio.Write(e.buff, w)
}

// Decode implements Encodable.
func (e *Uint8) Decode(r io.Reader) (reflect.Value, error) {
	if err := encio.Read(e.buff, r); err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	v := reflect.New(e.ty).Elem()
	v.SetUint(uint64(e.buff[0]))
	return v, nil
}

// NewUint returns a new Encodable for uint16 and uint32 kinds.
func NewUint(ty reflect.Type) *Uint {
	if ty.Kind() != reflect.Uint16 && ty.Kind() != reflect.Uint32 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of uint16 or uint32 kind", ty), 0))
	}
	return &Uint{ty: ty}
}

// Uint is an Encodable for unsigned integers, written as variable-length integers.
type Uint struct {
	ty  reflect.Type
	enc encio.Uvarint
}

// Type implements Encodable.
func (e *Uint) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Uint) Encode(v reflect.Value, w io.Writer) error {
	return e.enc.Encode(w, uint32(v.Uint()))
}

// Decode implements Encodable.
func (e *Uint) Decode(r io.Reader) (reflect.Value, error) {
	n, err := e.enc.Decode(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	v := reflect.New(e.ty).Elem()
	if v.OverflowUint(uint64(n)) {
		return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("%v overflows %v", n, e.ty), 0)
	}
	v.SetUint(uint64(n))
	return v, nil
}
