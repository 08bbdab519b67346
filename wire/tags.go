package wire

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/stewi1014/enginetypes/encio"
)

// StructTag is the struct tag read by TagSource. Its value is the field's wire key,
// i.e. `wire:"0"`. Fields tagged `wire:"-"` and untagged fields are not transmitted.
const StructTag = "wire"

// TagSource builds Tables from StructTag struct tags, for types that do not declare a Table by hand.
// Tag-built tables never have a constructor; decoded values are assigned field by field.
// Types without a single tagged field are unknown to it.
// It builds a new Table on every call, so wrap it in a CachingSource.
var TagSource = SourceFromFunc(func(ty reflect.Type) (*Table, bool) {
	if ty.Kind() != reflect.Struct {
		return nil, false
	}

	var opts []Option
	var ignored []string
	for i := 0; i < ty.NumField(); i++ {
		field := ty.Field(i)
		if field.PkgPath != "" || field.Anonymous {
			continue
		}

		tag, tagged := field.Tag.Lookup(StructTag)
		tag = strings.TrimSpace(tag)
		if !tagged || tag == "-" {
			ignored = append(ignored, field.Name)
			continue
		}

		key, err := strconv.Atoi(tag)
		if err != nil {
			encio.Warnf("%v (decoding struct tag of %v in %v)", err, field.Name, ty)
			return nil, false
		}
		opts = append(opts, Stored(key, field.Name))
	}

	if len(opts) == 0 {
		return nil, false
	}
	if len(ignored) > 0 {
		opts = append(opts, Ignored(ignored...))
	}

	t, err := NewTable(reflect.New(ty).Elem().Interface(), opts...)
	if err != nil {
		encio.Warnf("%v", err)
		return nil, false
	}
	return t, true
})
