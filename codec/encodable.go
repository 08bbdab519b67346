package codec

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/stewi1014/enginetypes/encio"
)

// Encodable is an Encoder and Decoder for a specific type.
//
// Encodables are not assumed to be thread safe; Encoder and Decoder serialise access to them.
//
// Encodables return two kinds of error.
// encio.IOError for io and corrupted data errors, and encio.Error for encoding errors.
type Encodable interface {
	// Type returns the type that the Encodable encodes.
	Type() reflect.Type

	// Encode writes v, which must be of Type(), to w.
	Encode(v reflect.Value, w io.Writer) error

	// Decode reads a value of Type() from r.
	// Decode will only read what Encode wrote; no extra data is read.
	Decode(r io.Reader) (reflect.Value, error)
}

// encodables creates and caches Encodables for a Config.
type encodables struct {
	config Config
	mutex  sync.Mutex
	cache  map[reflect.Type]Encodable
}

func newEncodables(config Config) *encodables {
	return &encodables{
		config: config,
		cache:  make(map[reflect.Type]Encodable),
	}
}

// get returns the Encodable for ty.
func (c *encodables) get(ty reflect.Type) (Encodable, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.newEncodable(ty)
}

// newEncodable must be called with the mutex held.
func (c *encodables) newEncodable(ty reflect.Type) (Encodable, error) {
	if enc, ok := c.cache[ty]; ok {
		return enc, nil
	}

	kind := ty.Kind()
	var enc Encodable
	switch kind {
	case reflect.Struct:
		table, ok := c.config.Source.Table(ty)
		if !ok {
			return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("no field table for %v", ty), 0)
		}

		// Cached before its fields are resolved so recursive types find themselves.
		obj := &Object{ty: ty, table: table, skipUnknown: c.config.SkipUnknown}
		c.cache[ty] = obj
		if err := obj.resolve(c); err != nil {
			delete(c.cache, ty)
			return nil, err
		}
		return obj, nil

	case reflect.Slice:
		elem, err := c.newEncodable(ty.Elem())
		if err != nil {
			return nil, err
		}
		enc = NewSlice(ty, elem)

	case reflect.Float32:
		enc = NewFloat32(ty)
	case reflect.Float64:
		enc = NewFloat64(ty)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		enc = NewInt(ty)
	case reflect.Uint8:
		enc = NewUint8(ty)
	case reflect.Uint16, reflect.Uint32:
		enc = NewUint(ty)

	case reflect.Bool:
		enc = NewBool(ty)
	case reflect.String:
		enc = NewString(ty)

	default:
		return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("cannot create encodable for type %v", ty), 0)
	}

	c.cache[ty] = enc
	return enc, nil
}

// noEOF turns a clean io.EOF into an unexpected one. Only the start of a message may end cleanly.
func noEOF(err error, r io.Reader) error {
	if err == io.EOF {
		return encio.NewIOError(io.ErrUnexpectedEOF, r, "", 1)
	}
	return err
}
