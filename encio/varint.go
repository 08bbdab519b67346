package encio

import (
	"fmt"
	"io"
)

const (
	maxSingleUint = 255 - 4
)

// Uvarint provides fast methods for reading and writing uint32s in variable-length format.
// Numbers below 251 take a single byte, anything else a header byte followed by up to 4 little-endian bytes.
type Uvarint [5]byte

// Encode writes n to w
func (buff *Uvarint) Encode(w io.Writer, n uint32) error {
	if n < maxSingleUint {
		buff[0] = uint8(n)
		return Write(buff[:1], w)
	}
	size := uint8(1)
	for n > 0 {
		buff[size] = uint8(n)
		n >>= 8
		size++
	}
	buff[0] = maxSingleUint + size - 1
	return Write(buff[:size], w)
}

// Decode reads a uint32 from r
func (buff *Uvarint) Decode(r io.Reader) (uint32, error) {
	if err := Read(buff[:1], r); err != nil {
		return 0, err
	}
	if buff[0] < maxSingleUint {
		return uint32(buff[0]), nil
	}
	size := buff[0] - maxSingleUint
	if err := Read(buff[:size], r); err != nil {
		if err == io.EOF {
			return 0, NewIOError(io.ErrUnexpectedEOF, r, "truncated varint", 0)
		}
		return 0, err
	}
	n := uint32(0)
	for i := byte(0); i < size; i++ {
		n |= uint32(buff[i]) << (i * 8)
	}
	return n, nil
}

// DecodeLen reads a length or count from r, rejecting anything larger than TooBig.
func (buff *Uvarint) DecodeLen(r io.Reader) (int, error) {
	n, err := buff.Decode(r)
	if err != nil {
		return 0, err
	}
	if uint64(n) > TooBig {
		return 0, NewIOError(ErrMalformed, r, fmt.Sprintf("length %v is too big", n), 1)
	}
	return int(n), nil
}

// Varint writes int32s as zig-zag encoded Uvarints.
type Varint struct {
	u Uvarint
}

// Encode writes n to w.
func (buff *Varint) Encode(w io.Writer, n int32) error {
	return buff.u.Encode(w, ZigZag(n))
}

// Decode reads an int32 from r.
func (buff *Varint) Decode(r io.Reader) (int32, error) {
	n, err := buff.u.Decode(r)
	return UnZigZag(n), err
}
