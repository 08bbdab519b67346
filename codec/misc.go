package codec

import (
	"fmt"
	"io"
	"reflect"

	"github.com/stewi1014/enginetypes/encio"
)

// NewBool returns a new bool Encodable.
func NewBool(ty reflect.Type) *Bool {
	if ty.Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of bool kind", ty), 0))
	}
	return &Bool{
		ty:   ty,
		buff: make([]byte, 1),
	}
}

// Bool is an Encodable for bools, written as a single 0 or 1 byte.
type Bool struct {
	ty   reflect.Type
	buff []byte
}

// Type implements Encodable.
func (e *Bool) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Bool) Encode(v reflect.Value, w io.Writer) error {
	e.buff[0] = 0
	if v.Bool() {
		e.buff[0] = 1
	}
	return encio.Write(e.buff, w)
}

// Decode implements Encodable.
func (e *Bool) Decode(r io.Reader) (reflect.Value, error) {
	if err := encio.Read(e.buff, r); err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	if e.buff[0] > 1 {
		return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("invalid bool byte %v", e.buff[0]), 0)
	}
	v := reflect.New(e.ty).Elem()
	v.SetBool(e.buff[0] == 1)
	return v, nil
}

// NewString returns a new string Encodable.
func NewString(ty reflect.Type) *String {
	if ty.Kind() != reflect.String {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of string kind", ty), 0))
	}
	return &String{ty: ty}
}

// String is an Encodable for strings, written as a length followed by the bytes.
type String struct {
	ty  reflect.Type
	len encio.Uvarint
}

// Type implements Encodable.
func (e *String) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *String) Encode(v reflect.Value, w io.Writer) error {
	str := v.String()
	if err := e.len.Encode(w, uint32(len(str))); err != nil {
		return err
	}
	return encio.Write([]byte(str), w)
}

// Decode implements Encodable.
func (e *String) Decode(r io.Reader) (reflect.Value, error) {
	l, err := e.len.DecodeLen(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}

	buff := make([]byte, l)
	if err := encio.Read(buff, r); err != nil {
		return reflect.Value{}, noEOF(err, r)
	}

	v := reflect.New(e.ty).Elem()
	v.SetString(string(buff))
	return v, nil
}
