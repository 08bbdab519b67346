package codec

import (
	"fmt"
	"io"
	"reflect"

	"github.com/stewi1014/enginetypes/encio"
	"github.com/stewi1014/enginetypes/wire"
)

// writeFramed encodes v with enc and writes it to w preceded by its length.
func writeFramed(enc Encodable, v reflect.Value, w io.Writer, l *encio.Uvarint) error {
	var payload encio.Buffer
	if err := enc.Encode(v, &payload); err != nil {
		return err
	}
	if err := l.Encode(w, uint32(payload.Len())); err != nil {
		return err
	}
	return encio.Write(payload.Bytes(), w)
}

// readFrame reads a length-prefixed payload from r.
func readFrame(r io.Reader, l *encio.Uvarint) (*encio.Buffer, error) {
	n, err := l.DecodeLen(r)
	if err != nil {
		return nil, noEOF(err, r)
	}

	buff, err := readN(r, n)
	if err != nil {
		return nil, err
	}
	return encio.NewBuffer(buff), nil
}

// remaining returns the number of unread bytes in r, if r can tell.
func remaining(r io.Reader) (int, bool) {
	if lr, ok := r.(interface{ Len() int }); ok {
		return lr.Len(), true
	}
	return 0, false
}

// readN reads exactly n bytes from r.
// Lengths come off the wire, so the buffer is only sized up front when r can vouch for n bytes;
// otherwise it grows as data arrives.
func readN(r io.Reader, n int) ([]byte, error) {
	if left, ok := remaining(r); ok {
		if n > left {
			return nil, encio.NewIOError(io.ErrUnexpectedEOF, r, fmt.Sprintf("want %v bytes but only %v remain", n, left), 1)
		}
		buff := make([]byte, n)
		if err := encio.Read(buff, r); err != nil {
			return nil, noEOF(err, r)
		}
		return buff, nil
	}

	buff, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, encio.NewIOError(err, r, "", 1)
	}
	if len(buff) != n {
		return nil, encio.NewIOError(io.ErrUnexpectedEOF, r, fmt.Sprintf("want %v bytes but only got %v", n, len(buff)), 1)
	}
	return buff, nil
}

// readFramed decodes a length-prefixed payload with enc, requiring the payload to be consumed exactly.
func readFramed(enc Encodable, r io.Reader, l *encio.Uvarint) (reflect.Value, error) {
	frame, err := readFrame(r, l)
	if err != nil {
		return reflect.Value{}, err
	}

	v, err := enc.Decode(frame)
	if err != nil {
		return reflect.Value{}, err
	}
	if frame.Len() != 0 {
		return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("%v trailing bytes after %v", frame.Len(), enc.Type()), 1)
	}
	return v, nil
}

// maxPrealloc caps the up front allocation for slices read from readers of unknown length.
const maxPrealloc = 64

// NewSlice returns a new slice Encodable.
func NewSlice(ty reflect.Type, elem Encodable) *Slice {
	if ty.Kind() != reflect.Slice {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a slice", ty), 0))
	}
	if elem.Type() != ty.Elem() {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v given element Encodable for %v", ty, elem.Type()), 0))
	}
	return &Slice{
		ty:   ty,
		elem: elem,
	}
}

// Slice is an Encodable for slices.
// It writes the element count plus one, with zero meaning a nil slice, then every element framed by its length.
// Element order is kept exactly; nothing is sorted or deduplicated.
type Slice struct {
	ty   reflect.Type
	elem Encodable
	len  encio.Uvarint
}

// Type implements Encodable.
func (e *Slice) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Slice) Encode(v reflect.Value, w io.Writer) error {
	if v.IsNil() {
		return e.len.Encode(w, 0)
	}

	l := v.Len()
	if uint64(l) >= encio.TooBig {
		return encio.NewError(encio.ErrBadType, fmt.Sprintf("%v of length %v is too big", e.ty, l), 0)
	}
	if err := e.len.Encode(w, uint32(l)+1); err != nil {
		return err
	}

	for i := 0; i < l; i++ {
		if err := writeFramed(e.elem, v.Index(i), w, &e.len); err != nil {
			return err
		}
	}
	return nil
}

// Decode implements Encodable.
func (e *Slice) Decode(r io.Reader) (reflect.Value, error) {
	l, err := e.len.DecodeLen(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}

	v := reflect.New(e.ty).Elem()
	if l == 0 {
		return v, nil
	}
	l--

	// every element carries at least its length byte
	capacity := l
	if left, ok := remaining(r); ok {
		if l > left {
			return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("%v elements of %v sent in %v bytes", l, e.ty, left), 0)
		}
	} else if capacity > maxPrealloc {
		capacity = maxPrealloc
	}

	s := reflect.MakeSlice(e.ty, 0, capacity)
	for i := 0; i < l; i++ {
		elem, err := readFramed(e.elem, r, &e.len)
		if err != nil {
			return reflect.Value{}, err
		}
		s = reflect.Append(s, elem)
	}
	v.Set(s)
	return v, nil
}

// Object is an Encodable for types described by a wire.Table.
//
// It writes the number of fields, then for each field in key order its key, the length of its payload and the payload.
// Derived fields are written through their getters; members the table ignores are never written.
//
// On decode every key must be present exactly once. Unknown keys are malformed unless the Config allows skipping them.
// Once all fields are read the value is built with the table's entry point, or assigned field by field if it has none.
type Object struct {
	ty          reflect.Type
	table       *wire.Table
	fields      []wire.Field
	encs        []Encodable
	index       map[int]int
	skipUnknown bool
	len         encio.Uvarint
}

func (e *Object) resolve(c *encodables) error {
	e.fields = e.table.Fields()
	e.encs = make([]Encodable, len(e.fields))
	e.index = make(map[int]int, len(e.fields))

	for i, f := range e.fields {
		enc, err := c.newEncodable(f.Type)
		if err != nil {
			return err
		}
		e.encs[i] = enc
		e.index[f.Key] = i
	}
	return nil
}

// Table returns the table the Object encodes by.
func (e *Object) Table() *wire.Table { return e.table }

// Type implements Encodable.
func (e *Object) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Object) Encode(v reflect.Value, w io.Writer) error {
	if err := e.len.Encode(w, uint32(len(e.fields))); err != nil {
		return err
	}

	values := e.table.Values(v)
	for i, f := range e.fields {
		if err := e.len.Encode(w, uint32(f.Key)); err != nil {
			return err
		}
		if err := writeFramed(e.encs[i], values[i], w, &e.len); err != nil {
			return err
		}
	}
	return nil
}

// Decode implements Encodable.
func (e *Object) Decode(r io.Reader) (reflect.Value, error) {
	n, err := e.len.DecodeLen(r)
	if err != nil {
		return reflect.Value{}, noEOF(err, r)
	}
	if n > len(e.fields) && !e.skipUnknown {
		return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("%v fields sent for %v, which has %v", n, e.ty, len(e.fields)), 0)
	}

	args := make([]reflect.Value, len(e.fields))
	for parsed := 0; parsed < n; parsed++ {
		key, err := e.len.Decode(r)
		if err != nil {
			return reflect.Value{}, noEOF(err, r)
		}

		i, ok := e.index[int(key)]
		if !ok {
			if !e.skipUnknown {
				return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("unknown key %v for %v", key, e.ty), 0)
			}
			if _, err := readFrame(r, &e.len); err != nil {
				return reflect.Value{}, err
			}
			encio.Warnf("skipped unknown key %v while decoding %v", key, e.ty)
			continue
		}

		if args[i].IsValid() {
			return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("key %v (%v) of %v sent twice", key, e.fields[i].Name, e.ty), 0)
		}

		args[i], err = readFramed(e.encs[i], r, &e.len)
		if err != nil {
			return reflect.Value{}, err
		}
	}

	for i, arg := range args {
		if !arg.IsValid() {
			return reflect.Value{}, encio.NewIOError(encio.ErrMalformed, r, fmt.Sprintf("missing key %v (%v) of %v", e.fields[i].Key, e.fields[i].Name, e.ty), 0)
		}
	}

	return e.table.Construct(args)
}
