package codec

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/stewi1014/enginetypes/encio"
)

// NewDecoder returns a new Decoder reading from r.
func NewDecoder(r io.Reader, config *Config) (*Decoder, error) {
	c, err := config.copyAndFill()
	if err != nil {
		return nil, err
	}

	return &Decoder{
		r:    r,
		encs: newEncodables(c),
	}, nil
}

// Decoder reads messages written by an Encoder. It is safe for concurrent use.
type Decoder struct {
	r     io.Reader
	mutex sync.Mutex
	encs  *encodables
	len   encio.Uvarint
}

// Decode reads the next message into v, which must be a non-nil pointer to the encoded type.
// It returns io.EOF if the stream ends cleanly before a message.
// v is only written if the whole message decodes.
func (d *Decoder) Decode(v interface{}) error {
	val, err := decodeTarget(v)
	if err != nil {
		return err
	}

	enc, err := d.encs.get(val.Type())
	if err != nil {
		return err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	n, err := d.len.DecodeLen(d.r)
	if err != nil {
		return err // a clean io.EOF ends the stream
	}

	buff, err := readN(d.r, n)
	if err != nil {
		return err
	}

	decoded, err := decodePayload(enc, buff)
	if err != nil {
		return err
	}

	val.Set(decoded)
	return nil
}

func decodeTarget(v interface{}) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, encio.NewError(encio.ErrNilPointer, "cannot decode into nil interface", 1)
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return reflect.Value{}, encio.NewError(encio.ErrBadType, fmt.Sprintf("decoded values must be passed by reference (pointer), got %v", val.Type()), 1)
	}
	if val.IsNil() {
		return reflect.Value{}, encio.NewError(encio.ErrNilPointer, "cannot decode into nil pointer", 1)
	}

	return val.Elem(), nil
}
