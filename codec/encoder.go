package codec

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/stewi1014/enginetypes/encio"
)

// NewEncoder returns a new Encoder writing to w.
func NewEncoder(w io.Writer, config *Config) (*Encoder, error) {
	c, err := config.copyAndFill()
	if err != nil {
		return nil, err
	}

	return &Encoder{
		w:    w,
		encs: newEncodables(c),
	}, nil
}

// Encoder writes length-prefixed messages to a stream. It is safe for concurrent use.
type Encoder struct {
	w     io.Writer
	mutex sync.Mutex
	encs  *encodables
	buff  encio.Buffer
	len   encio.Uvarint
}

// Encode writes v as a single message. v may be a value or a pointer to one.
func (e *Encoder) Encode(v interface{}) error {
	val, err := encodeValue(v)
	if err != nil {
		return err
	}

	enc, err := e.encs.get(val.Type())
	if err != nil {
		return err
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.buff.Reset()
	if err := enc.Encode(val, &e.buff); err != nil {
		return err
	}
	if err := e.len.Encode(e.w, uint32(e.buff.Len())); err != nil {
		return err
	}
	return encio.Write(e.buff.Bytes(), e.w)
}

func encodeValue(v interface{}) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, encio.NewError(encio.ErrNilPointer, "cannot encode nil interface", 1)
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, encio.NewError(encio.ErrNilPointer, fmt.Sprintf("cannot encode nil %v", val.Type()), 1)
		}
		val = val.Elem()
	}
	return val, nil
}
