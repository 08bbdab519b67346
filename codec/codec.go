// Package codec is a binary encoding for types described by wire tables.
//
// A struct is written as a map of wire key to value, each value framed by its length:
//
//	count  uvarint      number of keyed fields
//	key    uvarint    \
//	length uvarint     } repeated count times, in key order
//	value  length bytes/
//
// float32 and float64 are little-endian IEEE 754, signed integers and enumerations are zig-zag uvarints,
// uint8 is a single byte, slices are a count plus one (zero for nil) followed by length-framed elements,
// and nested structs are nested maps. Uvarints are encio.Uvarint.
//
// Because every value is framed, a decoder can verify each field is consumed exactly,
// and can skip keys it does not know when Config.SkipUnknown is set.
//
// Encoder and Decoder add a length prefix to every message so a stream holds any number of them.
// Marshal and Unmarshal work on a single unframed value.
package codec

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/enginetypes/encio"
)

// Marshal returns the encoding of v. v may be a value or a pointer to one.
func Marshal(v interface{}, config *Config) ([]byte, error) {
	c, err := config.copyAndFill()
	if err != nil {
		return nil, err
	}

	val, err := encodeValue(v)
	if err != nil {
		return nil, err
	}

	enc, err := newEncodables(c).get(val.Type())
	if err != nil {
		return nil, err
	}

	var buff encio.Buffer
	if err := enc.Encode(val, &buff); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// Unmarshal decodes data into v, which must be a non-nil pointer.
// data must hold exactly one value; trailing bytes are malformed.
func Unmarshal(data []byte, v interface{}, config *Config) error {
	c, err := config.copyAndFill()
	if err != nil {
		return err
	}

	val, err := decodeTarget(v)
	if err != nil {
		return err
	}

	enc, err := newEncodables(c).get(val.Type())
	if err != nil {
		return err
	}

	decoded, err := decodePayload(enc, data)
	if err != nil {
		return err
	}

	val.Set(decoded)
	return nil
}

func decodePayload(enc Encodable, data []byte) (reflect.Value, error) {
	buff := encio.NewBuffer(data)
	decoded, err := enc.Decode(buff)
	if err != nil {
		return reflect.Value{}, err
	}

	if buff.Len() != 0 {
		return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, buff, fmt.Sprintf("%v trailing bytes after %v", buff.Len(), enc.Type()), 1)
	}
	return decoded, nil
}
