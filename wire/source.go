package wire

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/stewi1014/enginetypes/encio"
)

// Source resolves the Table of a type. Codecs take a Source and ask it for the Table of every
// struct type they meet, including the element types of fields and slices.
type Source interface {
	// Table returns the Table for ty, or false if ty is not known to the Source.
	Table(ty reflect.Type) (*Table, bool)
}

// SourceFromFunc creates a Source using a function.
func SourceFromFunc(table func(reflect.Type) (*Table, bool)) Source {
	return funcSource{table: table}
}

type funcSource struct {
	table func(reflect.Type) (*Table, bool)
}

// Table implements Source.
func (s funcSource) Table(ty reflect.Type) (*Table, bool) {
	return s.table(ty)
}

// Chain returns a Source asking each of sources in turn, returning the first Table found.
func Chain(sources ...Source) Source {
	return chain(sources)
}

type chain []Source

// Table implements Source.
func (c chain) Table(ty reflect.Type) (*Table, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if t, ok := s.Table(ty); ok {
			return t, true
		}
	}
	return nil, false
}

// NewCachingSource returns a new CachingSource, using source for cache misses.
// Misses are cached too, so source is asked about each type at most once.
func NewCachingSource(source Source) *CachingSource {
	return &CachingSource{
		cache:  make(map[reflect.Type]*Table),
		Source: source,
	}
}

// CachingSource provides a cache of Tables. It is safe for concurrent use if the wrapped Source is.
type CachingSource struct {
	mutex sync.RWMutex
	cache map[reflect.Type]*Table
	Source
}

// Table implements Source.
func (src *CachingSource) Table(ty reflect.Type) (*Table, bool) {
	src.mutex.RLock()
	t, ok := src.cache[ty]
	src.mutex.RUnlock()
	if ok {
		return t, t != nil
	}

	t, ok = src.Source.Table(ty)
	if !ok {
		t = nil
	}

	src.mutex.Lock()
	src.cache[ty] = t
	src.mutex.Unlock()
	return t, ok
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[reflect.Type]*Table),
	}
}

// Registry is a Source of explicitly registered Tables. It is safe for concurrent use.
type Registry struct {
	mutex  sync.RWMutex
	tables map[reflect.Type]*Table
}

// Register adds tables to the registry. A type can only be registered once.
func (r *Registry) Register(tables ...*Table) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	seen := make(map[reflect.Type]bool, len(tables))
	for i, t := range tables {
		if t == nil {
			return encio.NewError(encio.ErrNilPointer, fmt.Sprintf("table %v is nil", i), 0)
		}
		if _, ok := r.tables[t.ty]; ok || seen[t.ty] {
			return encio.NewError(ErrBadTable, fmt.Sprintf("%v is already registered", t.ty), 0)
		}
		seen[t.ty] = true
	}

	for _, t := range tables {
		r.tables[t.ty] = t
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(tables ...*Table) {
	if err := r.Register(tables...); err != nil {
		panic(err)
	}
}

// Table implements Source.
func (r *Registry) Table(ty reflect.Type) (*Table, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	t, ok := r.tables[ty]
	return t, ok
}

// Types returns every registered type, sorted by name.
func (r *Registry) Types() []reflect.Type {
	r.mutex.RLock()
	types := make([]reflect.Type, 0, len(r.tables))
	for ty := range r.tables {
		types = append(types, ty)
	}
	r.mutex.RUnlock()

	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	return types
}
