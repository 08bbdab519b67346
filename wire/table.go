// Package wire declares how a type is laid out on the wire, independent of how it is laid out in memory.
//
// Every serializable type has a Table; an ordered list of (key, member, type) entries and optionally a single
// deserialization entry point. Encoders walk the Table to produce bytes, and decoders either pass every keyed field,
// in key order, positionally to the entry point, or build a zero value and assign the fields one by one.
//
// wire itself never produces bytes; see package codec for an encoding that consumes Tables.
package wire

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/stewi1014/enginetypes/encio"
)

// ErrBadTable is returned when a table declaration is inconsistent with its type.
var ErrBadTable = errors.New("bad field table")

// Table is the wire layout of a single struct type.
// Tables are immutable once created and safe for concurrent use.
type Table struct {
	ty          reflect.Type
	fields      []Field
	ignored     []string
	constructor reflect.Value
	ctorName    string
}

// Option declares part of a Table.
type Option func(*builder) error

type builder struct {
	ty          reflect.Type
	fields      []Field
	ignored     []string
	constructor reflect.Value
	ctorName    string
}

// NewTable returns the Table for the type of prototype, declared by opts.
func NewTable(prototype interface{}, opts ...Option) (*Table, error) {
	if prototype == nil {
		return nil, encio.NewError(encio.ErrNilPointer, "cannot declare a table for a nil prototype", 0)
	}

	ty := reflect.TypeOf(prototype)
	if ty.Kind() != reflect.Struct {
		return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a struct", ty), 0)
	}

	b := &builder{ty: ty}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	sort.Stable(byKey(b.fields))
	for i := range b.fields {
		if b.fields[i].Key < 0 {
			return nil, badTable(ty, fmt.Sprintf("%v has negative key %v", b.fields[i].Name, b.fields[i].Key))
		}
		if i > 0 && b.fields[i].Key == b.fields[i-1].Key {
			return nil, badTable(ty, fmt.Sprintf("%v and %v share key %v", b.fields[i-1].Name, b.fields[i].Name, b.fields[i].Key))
		}
	}

	for _, name := range b.ignored {
		for _, f := range b.fields {
			if f.Name == name {
				return nil, badTable(ty, fmt.Sprintf("%v is both keyed and ignored", name))
			}
		}
	}

	if b.constructor.IsValid() {
		if err := checkConstructor(ty, b.fields, b.constructor); err != nil {
			return nil, err
		}
	}

	return &Table{
		ty:          ty,
		fields:      b.fields,
		ignored:     b.ignored,
		constructor: b.constructor,
		ctorName:    b.ctorName,
	}, nil
}

// MustTable is like NewTable but panics if the declaration is invalid.
// Tables are declared once, next to their types; an invalid declaration is programmer error.
func MustTable(prototype interface{}, opts ...Option) *Table {
	t, err := NewTable(prototype, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Stored declares the exported struct field name as carried on the wire under key.
func Stored(key int, name string) Option {
	return func(b *builder) error {
		sf, ok := b.ty.FieldByName(name)
		if !ok {
			return badTable(b.ty, fmt.Sprintf("no field %v", name))
		}
		if sf.PkgPath != "" {
			return badTable(b.ty, fmt.Sprintf("field %v is not exported", name))
		}

		b.fields = append(b.fields, Field{
			Key:   key,
			Name:  name,
			Type:  sf.Type,
			index: sf.Index,
		})
		return nil
	}
}

// Derived declares a computed member carried on the wire under key.
// getter must be a method on the type taking nothing and returning the value,
// and setter a method on the pointer to the type taking the value and returning nothing.
func Derived(key int, name, getter, setter string) Option {
	return func(b *builder) error {
		get, ok := b.ty.MethodByName(getter)
		if !ok {
			return badTable(b.ty, fmt.Sprintf("no value method %v for %v", getter, name))
		}
		// Method types from reflect.Type include the receiver.
		if get.Type.NumIn() != 1 || get.Type.NumOut() != 1 {
			return badTable(b.ty, fmt.Sprintf("getter %v must have the form func() T", getter))
		}
		vt := get.Type.Out(0)

		set, ok := reflect.PtrTo(b.ty).MethodByName(setter)
		if !ok {
			return badTable(b.ty, fmt.Sprintf("no pointer method %v for %v", setter, name))
		}
		if set.Type.NumIn() != 2 || set.Type.NumOut() != 0 || set.Type.In(1) != vt {
			return badTable(b.ty, fmt.Sprintf("setter %v must have the form func(%v)", setter, vt))
		}

		b.fields = append(b.fields, Field{
			Key:    key,
			Name:   name,
			Type:   vt,
			getter: get.Index,
			setter: set.Index,
		})
		return nil
	}
}

// Ignored records members that exist on the type but are never transmitted,
// because they are recomputed from the keyed fields.
// Each name must be a field or method of the type.
func Ignored(names ...string) Option {
	return func(b *builder) error {
		for _, name := range names {
			_, isField := b.ty.FieldByName(name)
			_, isMethod := reflect.PtrTo(b.ty).MethodByName(name)
			if !isField && !isMethod {
				return badTable(b.ty, fmt.Sprintf("ignored member %v does not exist", name))
			}
		}
		b.ignored = append(b.ignored, names...)
		return nil
	}
}

// Constructor declares fn as the deserialization entry point.
// fn must take every keyed field, in key order, and return the table's type.
// A type has at most one entry point.
func Constructor(fn interface{}) Option {
	return func(b *builder) error {
		if b.constructor.IsValid() {
			return badTable(b.ty, fmt.Sprintf("second constructor %v, already have %v", funcName(reflect.ValueOf(fn)), b.ctorName))
		}

		v := reflect.ValueOf(fn)
		if v.Kind() != reflect.Func || v.IsNil() {
			return badTable(b.ty, fmt.Sprintf("constructor must be a non-nil function, got %T", fn))
		}

		b.constructor = v
		b.ctorName = funcName(v)
		return nil
	}
}

func checkConstructor(ty reflect.Type, fields []Field, ctor reflect.Value) error {
	ct := ctor.Type()
	if ct.IsVariadic() {
		return badTable(ty, "constructor must not be variadic")
	}
	if ct.NumOut() != 1 || ct.Out(0) != ty {
		return badTable(ty, fmt.Sprintf("constructor %v must return %v", ct, ty))
	}
	if ct.NumIn() != len(fields) {
		return badTable(ty, fmt.Sprintf("constructor %v takes %v arguments but there are %v keyed fields", ct, ct.NumIn(), len(fields)))
	}
	for i, f := range fields {
		if ct.In(i) != f.Type {
			return badTable(ty, fmt.Sprintf("constructor argument %v is %v but key %v (%v) is %v", i, ct.In(i), f.Key, f.Name, f.Type))
		}
	}
	return nil
}

// Type returns the type the Table describes.
func (t *Table) Type() reflect.Type { return t.ty }

// Len returns the number of keyed fields.
func (t *Table) Len() int { return len(t.fields) }

// Fields returns the keyed fields in key order.
func (t *Table) Fields() []Field {
	fields := make([]Field, len(t.fields))
	copy(fields, t.fields)
	return fields
}

// Field returns the field with the given key.
func (t *Table) Field(key int) (Field, bool) {
	i := sort.Search(len(t.fields), func(i int) bool { return t.fields[i].Key >= key })
	if i < len(t.fields) && t.fields[i].Key == key {
		return t.fields[i], true
	}
	return Field{}, false
}

// Ignored returns the members that are never transmitted.
func (t *Table) Ignored() []string {
	ignored := make([]string, len(t.ignored))
	copy(ignored, t.ignored)
	return ignored
}

// HasConstructor returns true if the type declares a deserialization entry point.
func (t *Table) HasConstructor() bool {
	return t.constructor.IsValid()
}

// Values returns the wire value of every keyed field of v, in key order.
func (t *Table) Values(v reflect.Value) []reflect.Value {
	if v.Type() != t.ty {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("table for %v given %v", t.ty, v.Type()), 0))
	}

	values := make([]reflect.Value, len(t.fields))
	for i, f := range t.fields {
		values[i] = f.Get(v)
	}
	return values
}

// Construct builds a value from the wire values of every keyed field, in key order.
// If the type has an entry point, args are passed to it positionally.
// Otherwise a zero value is created and each field is assigned in key order.
func (t *Table) Construct(args []reflect.Value) (reflect.Value, error) {
	if len(args) != len(t.fields) {
		return reflect.Value{}, encio.NewError(
			encio.ErrBadType,
			fmt.Sprintf("%v has %v keyed fields but was given %v values", t.ty, len(t.fields), len(args)),
			0,
		)
	}
	for i, f := range t.fields {
		if !args[i].IsValid() || args[i].Type() != f.Type {
			return reflect.Value{}, encio.NewError(
				encio.ErrBadType,
				fmt.Sprintf("key %v (%v) of %v wants %v", f.Key, f.Name, t.ty, f.Type),
				0,
			)
		}
	}

	if t.constructor.IsValid() {
		return t.constructor.Call(args)[0], nil
	}

	v := reflect.New(t.ty).Elem()
	for i, f := range t.fields {
		f.Set(v, args[i])
	}
	return v, nil
}

// String describes the table, i.e.
//
//	enginetypes.Bounds{0: Center enginetypes.Vector3, 1: Size enginetypes.Vector3 (derived); ignored: Extents; constructor: enginetypes.NewBounds}
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(t.ty.String())
	sb.WriteString("{")
	for i, f := range t.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v %v", f.Key, f.Name, f.Type)
		if f.Derived() {
			sb.WriteString(" (derived)")
		}
	}
	if len(t.ignored) > 0 {
		sb.WriteString("; ignored: ")
		sb.WriteString(strings.Join(t.ignored, ", "))
	}
	if t.constructor.IsValid() {
		sb.WriteString("; constructor: ")
		sb.WriteString(t.ctorName)
	}
	sb.WriteString("}")
	return sb.String()
}

func badTable(ty reflect.Type, message string) error {
	return encio.NewError(ErrBadTable, ty.String()+": "+message, 1)
}

func funcName(v reflect.Value) string {
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return v.Type().String()
}
