package enginetypes

import (
	"sync"

	"github.com/stewi1014/enginetypes/codec"
	"github.com/stewi1014/enginetypes/wire"
)

var (
	catalogue     *wire.Registry
	catalogueOnce sync.Once
)

// Catalogue returns the registry holding the wire table of every struct type in the package.
// The registry is built on first use and shared; callers may register their own tables in it.
func Catalogue() *wire.Registry {
	catalogueOnce.Do(func() {
		catalogue = wire.NewRegistry()
		catalogue.MustRegister(tables()...)
	})
	return catalogue
}

// CodecConfig returns a codec.Config that encodes the catalogue's types.
// Struct types outside the catalogue are described by their wire struct tags.
func CodecConfig() *codec.Config {
	return &codec.Config{
		Source: wire.NewCachingSource(wire.Chain(Catalogue(), wire.TagSource)),
	}
}

// stored keys every named field in order from 0.
func stored(names ...string) []wire.Option {
	opts := make([]wire.Option, len(names))
	for i, name := range names {
		opts[i] = wire.Stored(i, name)
	}
	return opts
}

func withConstructor(ctor interface{}, opts ...wire.Option) []wire.Option {
	return append(opts, wire.Constructor(ctor))
}

func tables() []*wire.Table {
	return []*wire.Table{
		wire.MustTable(Vector2{}, withConstructor(NewVector2, stored("X", "Y")...)...),
		wire.MustTable(Vector3{}, withConstructor(NewVector3, stored("X", "Y", "Z")...)...),
		wire.MustTable(Vector4{}, withConstructor(NewVector4, stored("X", "Y", "Z", "W")...)...),
		wire.MustTable(Vector2Int{}, withConstructor(NewVector2Int, stored("X", "Y")...)...),
		wire.MustTable(Vector3Int{}, withConstructor(NewVector3Int, stored("X", "Y", "Z")...)...),
		wire.MustTable(Quaternion{}, withConstructor(NewQuaternion, stored("X", "Y", "Z", "W")...)...),

		wire.MustTable(Color{}, withConstructor(NewColor, stored("R", "G", "B", "A")...)...),
		wire.MustTable(Color32{}, withConstructor(NewColor32, stored("R", "G", "B", "A")...)...),

		wire.MustTable(Bounds{},
			wire.Stored(0, "Center"),
			wire.Derived(1, "Size", "Size", "SetSize"),
			wire.Ignored("Extents"),
			wire.Constructor(NewBounds),
		),
		wire.MustTable(BoundsInt{}, withConstructor(NewBoundsInt, stored("Position", "Size")...)...),
		wire.MustTable(Rect{}, withConstructor(NewRect, stored("X", "Y", "Width", "Height")...)...),
		wire.MustTable(RectInt{}, withConstructor(NewRectInt, stored("X", "Y", "Width", "Height")...)...),
		wire.MustTable(RectOffset{}, stored("Left", "Right", "Top", "Bottom")...),
		wire.MustTable(RangeInt{}, withConstructor(NewRangeInt, stored("Start", "Length")...)...),
		wire.MustTable(LayerMask{}, stored("Value")...),

		wire.MustTable(Keyframe{}, withConstructor(NewKeyframeTangents, stored("Time", "Value", "InTangent", "OutTangent")...)...),
		wire.MustTable(AnimationCurve{},
			wire.Stored(0, "Keys"),
			wire.Stored(1, "PostWrapMode"),
			wire.Stored(2, "PreWrapMode"),
			wire.Ignored("Length"),
		),
		wire.MustTable(Gradient{}, stored("ColorKeys", "AlphaKeys", "Mode")...),
		wire.MustTable(GradientColorKey{}, withConstructor(NewGradientColorKey, stored("Color", "Time")...)...),
		wire.MustTable(GradientAlphaKey{}, withConstructor(NewGradientAlphaKey, stored("Alpha", "Time")...)...),

		wire.MustTable(Matrix4x4{}, stored(
			"M00", "M10", "M20", "M30",
			"M01", "M11", "M21", "M31",
			"M02", "M12", "M22", "M32",
			"M03", "M13", "M23", "M33",
		)...),
	}
}
