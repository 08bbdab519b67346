package wire

import (
	"reflect"
)

// Field is a single wire-keyed member of a Table.
//
// A Field is either stored, read and written straight from a struct field,
// or derived, read through a value-receiver getter and written through a pointer-receiver setter.
// Derived fields are how a type puts a computed view on the wire in place of the member it actually stores;
// Bounds transmits size and recomputes extents from it.
type Field struct {
	// Key is the stable wire position of the field. Keys are never reassigned.
	Key int

	// Name is the member name, for diagnostics.
	Name string

	// Type is the type of the value carried on the wire.
	Type reflect.Type

	index  []int // stored
	getter int   // derived, index in the method set of the table type
	setter int   // derived, index in the method set of the pointer to the table type
}

// Derived returns true if the field is computed through an accessor pair rather than stored.
func (f Field) Derived() bool {
	return f.index == nil
}

// Get returns the field's value from v, which must be of the table's type.
func (f Field) Get(v reflect.Value) reflect.Value {
	if f.index != nil {
		return v.FieldByIndex(f.index)
	}
	return v.Method(f.getter).Call(nil)[0]
}

// Set sets the field in v to x. v must be addressable.
func (f Field) Set(v reflect.Value, x reflect.Value) {
	if f.index != nil {
		v.FieldByIndex(f.index).Set(x)
		return
	}
	v.Addr().Method(f.setter).Call([]reflect.Value{x})
}

type byKey []Field

func (a byKey) Len() int           { return len(a) }
func (a byKey) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byKey) Less(i, j int) bool { return a[i].Key < a[j].Key }
