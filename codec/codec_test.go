package codec_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"runtime"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/enginetypes/codec"
	"github.com/stewi1014/enginetypes/encio"
	"github.com/stewi1014/enginetypes/wire"
)

type Point struct {
	X, Y float32
}

func NewPoint(x, y float32) Point { return Point{X: x, Y: y} }

type Kind int32

const (
	KindOpen Kind = iota
	KindClosed
	KindNegative Kind = -7
)

type Shape struct {
	Name   string
	Points []Point
	Closed bool
	Kind   Kind
	Area   float64
	Tag    uint8
	Count  uint16
	Layer  int
}

// Square stores Half and transmits Side.
type Square struct {
	Half float32
}

func (s Square) Side() float32      { return s.Half * 2 }
func (s *Square) SetSide(f float32) { s.Half = f / 2 }

type Node struct {
	Value    int32
	Children []Node
}

type Flag struct {
	On bool
}

type Small struct {
	V int8
}

type Unsupported struct {
	M map[string]int
}

type Tagged struct {
	Name   string `wire:"0"`
	Weight int32  `wire:"1"`
	Cache  []byte
}

func testConfig() *codec.Config {
	r := wire.NewRegistry()
	r.MustRegister(
		wire.MustTable(Point{}, wire.Stored(0, "X"), wire.Stored(1, "Y"), wire.Constructor(NewPoint)),
		wire.MustTable(Shape{},
			wire.Stored(0, "Name"),
			wire.Stored(1, "Points"),
			wire.Stored(2, "Closed"),
			wire.Stored(3, "Kind"),
			wire.Stored(4, "Area"),
			wire.Stored(5, "Tag"),
			wire.Stored(6, "Count"),
			wire.Stored(8, "Layer"), // 7 retired
		),
		wire.MustTable(Square{}, wire.Derived(0, "Side", "Side", "SetSide"), wire.Ignored("Half")),
		wire.MustTable(Node{}, wire.Stored(0, "Value"), wire.Stored(1, "Children")),
		wire.MustTable(Flag{}, wire.Stored(0, "On")),
		wire.MustTable(Small{}, wire.Stored(0, "V")),
		wire.MustTable(Unsupported{}, wire.Stored(0, "M")),
	)
	return &codec.Config{
		Source: wire.Chain(r, wire.NewCachingSource(wire.TagSource)),
	}
}

var roundTripCases = []struct {
	desc  string
	value interface{}
}{
	{desc: "point", value: Point{X: 1.5, Y: -2}},
	{desc: "zero point", value: Point{}},
	{desc: "infinite point", value: Point{X: float32(math.Inf(1)), Y: float32(math.Inf(-1))}},
	{
		desc: "shape",
		value: Shape{
			Name:   "triangle",
			Points: []Point{{0, 0}, {1, 0}, {0, 1}},
			Closed: true,
			Kind:   KindNegative,
			Area:   0.5,
			Tag:    255,
			Count:  60000,
			Layer:  -1 << 31,
		},
	},
	{desc: "empty shape", value: Shape{}},
	{desc: "empty points", value: Shape{Points: []Point{}}},
	{desc: "square", value: Square{Half: 3}},
	{
		desc: "tree",
		value: Node{
			Value: 1,
			Children: []Node{
				{Value: 2},
				{Value: 3, Children: []Node{{Value: 4}}},
			},
		},
	},
	{desc: "tagged", value: Tagged{Name: "tag", Weight: 9}},
}

func TestMarshal(t *testing.T) {
	config := testConfig()

	for _, tC := range roundTripCases {
		t.Run(tC.desc, func(t *testing.T) {
			data, err := codec.Marshal(tC.value, config)
			td.CmpNoError(t, err)

			decoded := reflect.New(reflect.TypeOf(tC.value))
			td.CmpNoError(t, codec.Unmarshal(data, decoded.Interface(), config))
			td.Cmp(t, decoded.Elem().Interface(), tC.value)
		})
	}
}

func TestEncoder(t *testing.T) {
	config := testConfig()
	buff := new(bytes.Buffer)

	enc, err := codec.NewEncoder(buff, config)
	td.CmpNoError(t, err)
	for _, tC := range roundTripCases {
		td.CmpNoError(t, enc.Encode(tC.value), tC.desc)
	}

	dec, err := codec.NewDecoder(buff, config)
	td.CmpNoError(t, err)
	for _, tC := range roundTripCases {
		decoded := reflect.New(reflect.TypeOf(tC.value))
		td.CmpNoError(t, dec.Decode(decoded.Interface()), tC.desc)
		td.Cmp(t, decoded.Elem().Interface(), tC.value, tC.desc)
	}

	var p Point
	td.Cmp(t, dec.Decode(&p), io.EOF, "stream ends cleanly")
}

func TestEncodePointer(t *testing.T) {
	config := testConfig()

	byValue, err := codec.Marshal(Point{1, 2}, config)
	td.CmpNoError(t, err)
	byPointer, err := codec.Marshal(&Point{1, 2}, config)
	td.CmpNoError(t, err)
	td.Cmp(t, byPointer, byValue)
}

// point12 is Point{1, 2}.
var point12 = []byte{
	2,                      // fields
	0, 4, 0, 0, 0x80, 0x3f, // key 0, 4 bytes, 1.0
	1, 4, 0, 0, 0, 0x40,    // key 1, 4 bytes, 2.0
}

func TestLayout(t *testing.T) {
	config := testConfig()

	testCases := []struct {
		desc  string
		value interface{}
		want  []byte
	}{
		{
			desc:  "point",
			value: Point{1, 2},
			want:  point12,
		},
		{
			desc:  "derived field carries the getter's value",
			value: Square{Half: 0.5},
			want:  []byte{1, 0, 4, 0, 0, 0x80, 0x3f},
		},
		{
			desc:  "signed integers are zig-zag",
			value: Small{V: -2},
			want:  []byte{1, 0, 1, 3},
		},
		{
			desc:  "bool",
			value: Flag{On: true},
			want:  []byte{1, 0, 1, 1},
		},
		{
			desc:  "nil slice",
			value: Node{Value: 1},
			want:  []byte{2, 0, 1, 2, 1, 1, 0},
		},
		{
			desc:  "empty slice",
			value: Node{Value: 1, Children: []Node{}},
			want:  []byte{2, 0, 1, 2, 1, 1, 1},
		},
		{
			desc:  "slice elements are framed",
			value: Node{Children: []Node{{}}},
			want:  []byte{2, 0, 1, 0, 1, 9, 2, 7, 2, 0, 1, 0, 1, 1, 0},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			data, err := codec.Marshal(tC.value, config)
			td.CmpNoError(t, err)
			td.Cmp(t, data, tC.want)
		})
	}
}

// hugeChildren is a Node claiming 16M children in a five byte field.
var hugeChildren = []byte{
	2,
	0, 1, 0,
	1, 5, 255, 1, 0, 0, 1,
}

func TestMalformed(t *testing.T) {
	config := testConfig()

	testCases := []struct {
		desc string
		data []byte
		into interface{}
		want error
	}{
		{
			desc: "missing key",
			data: []byte{1, 0, 4, 0, 0, 0x80, 0x3f},
			into: new(Point),
			want: encio.ErrMalformed,
		},
		{
			desc: "unknown key",
			data: []byte{2, 0, 4, 0, 0, 0x80, 0x3f, 5, 4, 0, 0, 0, 0x40},
			into: new(Point),
			want: encio.ErrMalformed,
		},
		{
			desc: "too many fields",
			data: append([]byte{3}, point12[1:]...),
			into: new(Point),
			want: encio.ErrMalformed,
		},
		{
			desc: "duplicate key",
			data: []byte{2, 0, 4, 0, 0, 0x80, 0x3f, 0, 4, 0, 0, 0x80, 0x3f},
			into: new(Point),
			want: encio.ErrMalformed,
		},
		{
			desc: "trailing bytes",
			data: append(append([]byte{}, point12...), 0),
			into: new(Point),
			want: encio.ErrMalformed,
		},
		{
			desc: "field longer than its value",
			data: []byte{2, 0, 5, 0, 0, 0x80, 0x3f, 9, 1, 4, 0, 0, 0, 0x40},
			into: new(Point),
			want: encio.ErrMalformed,
		},
		{
			desc: "field shorter than its value",
			data: []byte{2, 0, 3, 0, 0, 0x80, 1, 4, 0, 0, 0, 0x40},
			into: new(Point),
			want: io.ErrUnexpectedEOF,
		},
		{
			desc: "truncated",
			data: point12[:5],
			into: new(Point),
			want: io.ErrUnexpectedEOF,
		},
		{
			desc: "empty",
			data: nil,
			into: new(Point),
			want: io.ErrUnexpectedEOF,
		},
		{
			desc: "bad bool",
			data: []byte{1, 0, 1, 2},
			into: new(Flag),
			want: encio.ErrMalformed,
		},
		{
			desc: "integer overflow",
			data: []byte{1, 0, 3, 253, 0x58, 0x02},
			into: new(Small),
			want: encio.ErrMalformed,
		},
		{
			desc: "element count beyond payload",
			data: hugeChildren,
			into: new(Node),
			want: encio.ErrMalformed,
		},
		{
			desc: "field length beyond payload",
			data: []byte{2, 0, 255, 0, 0, 0, 1, 0, 0},
			into: new(Point),
			want: io.ErrUnexpectedEOF,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			before := reflect.ValueOf(tC.into).Elem().Interface()

			err := codec.Unmarshal(tC.data, tC.into, config)
			td.CmpTrue(t, errors.Is(err, tC.want), "got %v", err)

			var ioErr encio.IOError
			td.CmpTrue(t, errors.As(err, &ioErr))

			td.Cmp(t, reflect.ValueOf(tC.into).Elem().Interface(), before, "target is untouched")
		})
	}
}

func TestSkipUnknown(t *testing.T) {
	var warnings bytes.Buffer
	old := encio.Warnings
	encio.Warnings = &warnings
	defer func() { encio.Warnings = old }()

	config := testConfig()
	config.SkipUnknown = true

	data := []byte{
		3,
		0, 4, 0, 0, 0x80, 0x3f,
		5, 1, 9, // from a newer Point
		1, 4, 0, 0, 0, 0x40,
	}

	var p Point
	td.CmpNoError(t, codec.Unmarshal(data, &p, config))
	td.Cmp(t, p, Point{1, 2})
	td.Cmp(t, warnings.String(), td.Contains("skipped unknown key 5"))

	err := codec.Unmarshal([]byte{1, 5, 1, 9}, &p, config)
	td.CmpTrue(t, errors.Is(err, encio.ErrMalformed), "missing keys are never skipped: %v", err)
}

func TestBadType(t *testing.T) {
	config := testConfig()

	testCases := []struct {
		desc  string
		value interface{}
		want  error
	}{
		{desc: "no table", value: struct{ A int32 }{}, want: encio.ErrBadType},
		{desc: "unsupported kind", value: Unsupported{}, want: encio.ErrBadType},
		{desc: "int64", value: int64(5), want: encio.ErrBadType},
		{desc: "nil", value: nil, want: encio.ErrNilPointer},
		{desc: "nil pointer", value: (*Point)(nil), want: encio.ErrNilPointer},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, err := codec.Marshal(tC.value, config)
			td.CmpTrue(t, errors.Is(err, tC.want), "got %v", err)

			var encErr encio.Error
			td.CmpTrue(t, errors.As(err, &encErr))
		})
	}
}

func TestDecodeTarget(t *testing.T) {
	config := testConfig()

	err := codec.Unmarshal(point12, Point{}, config)
	td.CmpTrue(t, errors.Is(err, encio.ErrBadType), "got %v", err)

	err = codec.Unmarshal(point12, (*Point)(nil), config)
	td.CmpTrue(t, errors.Is(err, encio.ErrNilPointer), "got %v", err)

	err = codec.Unmarshal(point12, nil, config)
	td.CmpTrue(t, errors.Is(err, encio.ErrNilPointer), "got %v", err)

	err = codec.Unmarshal(point12, new(Square), config)
	td.CmpTrue(t, errors.Is(err, encio.ErrMalformed), "a Point is not a Square: %v", err)
}

func TestConfig(t *testing.T) {
	_, err := codec.NewEncoder(new(bytes.Buffer), nil)
	td.CmpTrue(t, errors.Is(err, encio.ErrBadConfig), "got %v", err)

	_, err = codec.NewDecoder(new(bytes.Buffer), &codec.Config{})
	td.CmpTrue(t, errors.Is(err, encio.ErrBadConfig), "got %v", err)

	_, err = codec.Marshal(Point{}, nil)
	td.CmpTrue(t, errors.Is(err, encio.ErrBadConfig), "got %v", err)

	err = codec.Unmarshal(point12, new(Point), nil)
	td.CmpTrue(t, errors.Is(err, encio.ErrBadConfig), "got %v", err)
}

func TestStreamTruncated(t *testing.T) {
	config := testConfig()
	buff := new(bytes.Buffer)

	enc, err := codec.NewEncoder(buff, config)
	td.CmpNoError(t, err)
	td.CmpNoError(t, enc.Encode(Point{1, 2}))

	data := buff.Bytes()
	dec, err := codec.NewDecoder(bytes.NewReader(data[:len(data)-1]), config)
	td.CmpNoError(t, err)

	var p Point
	err = dec.Decode(&p)
	td.CmpTrue(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
}

func TestStreamHugeLength(t *testing.T) {
	config := testConfig()

	testCases := []struct {
		desc string
		r    io.Reader
	}{
		{desc: "sized reader", r: bytes.NewReader([]byte{255, 0, 0, 0, 4, 2, 0})},
		{desc: "unsized reader", r: iotest.OneByteReader(bytes.NewReader([]byte{255, 0, 0, 0, 4, 2, 0}))},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			dec, err := codec.NewDecoder(tC.r, config)
			td.CmpNoError(t, err)

			var p Point
			err = dec.Decode(&p)
			td.CmpTrue(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
			td.Cmp(t, p, Point{})
		})
	}
}

func TestHugeCountAllocation(t *testing.T) {
	config := testConfig()
	var n Node
	td.CmpTrue(t, errors.Is(codec.Unmarshal(hugeChildren, &n, config), encio.ErrMalformed)) // warm the encodable cache

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	err := codec.Unmarshal(hugeChildren, &n, config)
	runtime.ReadMemStats(&after)

	td.CmpTrue(t, errors.Is(err, encio.ErrMalformed), "got %v", err)
	td.Cmp(t, after.TotalAlloc-before.TotalAlloc, td.Lt(uint64(1<<20)))
}

func TestSliceFromUnsizedReader(t *testing.T) {
	ty := reflect.TypeOf([]float32{})
	enc := codec.NewSlice(ty, codec.NewFloat32(ty.Elem()))

	values := make([]float32, 100)
	for i := range values {
		values[i] = float32(i) / 2
	}
	buff := new(bytes.Buffer)
	td.CmpNoError(t, enc.Encode(reflect.ValueOf(values), buff))

	v, err := enc.Decode(iotest.OneByteReader(bytes.NewReader(buff.Bytes())))
	td.CmpNoError(t, err)
	td.Cmp(t, v.Interface(), values)

	_, err = enc.Decode(iotest.OneByteReader(bytes.NewReader(buff.Bytes()[:buff.Len()-1])))
	td.CmpTrue(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
}

func TestConcurrentEncoder(t *testing.T) {
	config := testConfig()
	buff := new(bytes.Buffer)

	enc, err := codec.NewEncoder(buff, config)
	td.CmpNoError(t, err)

	const writers, each = 4, 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < each; j++ {
				if err := enc.Encode(Point{X: float32(i), Y: float32(j)}); err != nil {
					t.Error(err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	dec, err := codec.NewDecoder(buff, config)
	td.CmpNoError(t, err)

	seen := make(map[Point]bool)
	for {
		var p Point
		err := dec.Decode(&p)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		seen[p] = true
	}
	td.Cmp(t, len(seen), writers*each)
}

func BenchmarkEncode(b *testing.B) {
	enc, err := codec.NewEncoder(io.Discard, testConfig())
	if err != nil {
		b.Fatal(err)
	}

	shape := roundTripCases[3].value
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := enc.Encode(shape); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	config := testConfig()
	data, err := codec.Marshal(roundTripCases[3].value, config)
	if err != nil {
		b.Fatal(err)
	}

	var shape Shape
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := codec.Unmarshal(data, &shape, config); err != nil {
			b.Fatal(err)
		}
	}
}
