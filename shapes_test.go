package enginetypes_test

import (
	"errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	et "github.com/stewi1014/enginetypes"
)

func TestBounds(t *testing.T) {
	b := et.NewBounds(et.NewVector3(1, 1, 1), et.NewVector3(2, 2, 2))

	td.Cmp(t, b.Extents, et.Vector3One)
	td.Cmp(t, b.Size(), et.NewVector3(2, 2, 2))
	td.Cmp(t, b.Min(), et.Vector3Zero)
	td.Cmp(t, b.Max(), et.NewVector3(2, 2, 2))

	td.CmpTrue(t, b.Contains(et.Vector3One))
	td.CmpTrue(t, b.Contains(et.NewVector3(2, 2, 2)), "max corner is inside")
	td.CmpTrue(t, b.Contains(et.Vector3Zero), "min corner is inside")
	td.CmpFalse(t, b.Contains(et.NewVector3(2.5, 1, 1)))

	b.SetSize(et.NewVector3(4, 6, 8))
	td.Cmp(t, b.Extents, et.NewVector3(2, 3, 4))
	td.Cmp(t, b.Size(), et.NewVector3(4, 6, 8))

	td.Cmp(t, b.String(), "Center: (1.0, 1.0, 1.0), Extents: (2.0, 3.0, 4.0)")
	td.Cmp(t, b.Text("F2"), "Center: (1.00, 1.00, 1.00), Extents: (2.00, 3.00, 4.00)")

	near := b
	near.Center.X += 1e-6
	td.CmpTrue(t, b.Eq(near))
	td.CmpFalse(t, b.Ne(near))
	td.CmpFalse(t, b.Equals(near))
	td.CmpTrue(t, b.Ne(et.NewBounds(et.Vector3One, et.Vector3One)))
}

func TestBoundsInt(t *testing.T) {
	b := et.NewBoundsInt(et.NewVector3Int(1, 2, 3), et.NewVector3Int(2, 2, 2))

	td.Cmp(t, b.Min(), et.NewVector3Int(1, 2, 3))
	td.Cmp(t, b.Max(), et.NewVector3Int(3, 4, 5))
	td.Cmp(t, b.Center(), et.NewVector3(2, 3, 4))
	td.CmpTrue(t, b.Equals(et.NewBoundsInt(et.NewVector3Int(1, 2, 3), et.NewVector3Int(2, 2, 2))))
	td.CmpFalse(t, b.Equals(et.BoundsInt{}))
	td.Cmp(t, b.String(), "Position: (1, 2, 3), Size: (2, 2, 2)")
}

func TestRect(t *testing.T) {
	r := et.NewRect(1, 2, 3, 4)

	td.Cmp(t, r.Position(), et.NewVector2(1, 2))
	td.Cmp(t, r.Size(), et.NewVector2(3, 4))
	td.Cmp(t, r.Center(), et.NewVector2(2.5, 4))
	td.Cmp(t, r.XMax(), float32(4))
	td.Cmp(t, r.YMax(), float32(6))

	td.CmpTrue(t, r.Contains(et.NewVector2(1, 2)), "min corner is inside")
	td.CmpFalse(t, r.Contains(et.NewVector2(4, 6)), "max corner is outside")
	td.CmpFalse(t, r.Contains(et.NewVector2(0, 3)))

	td.Cmp(t, et.NewRectFromVectors(et.NewVector2(1, 2), et.NewVector2(3, 4)), r)
	td.Cmp(t, et.NewRectFrom(r), r)
	td.CmpTrue(t, r.Equals(et.NewRect(1, 2, 3, 4)))
	td.CmpFalse(t, r.Equals(et.RectZero))

	td.Cmp(t, et.RectZero.String(), "(x:0.0, y:0.0, width:0.0, height:0.0)")
	td.Cmp(t, r.Text("F2"), "(x:1.00, y:2.00, width:3.00, height:4.00)")

	negative := et.NewRect(0, 0, -1, -1)
	td.Cmp(t, negative.Size(), et.NewVector2(-1, -1), "negative sizes are kept")
}

func TestRectInt(t *testing.T) {
	r := et.NewRectInt(1, 2, 3, 4)

	td.Cmp(t, r.Position(), et.NewVector2Int(1, 2))
	td.Cmp(t, r.Size(), et.NewVector2Int(3, 4))
	td.Cmp(t, r.XMax(), int32(4))
	td.Cmp(t, r.YMax(), int32(6))
	td.CmpTrue(t, r.Contains(et.NewVector2Int(3, 5)))
	td.CmpFalse(t, r.Contains(et.NewVector2Int(4, 5)))

	td.Cmp(t, et.NewRectIntFromVectors(et.NewVector2Int(1, 2), et.NewVector2Int(3, 4)), r)
	td.Cmp(t, et.NewRectIntFrom(r), r)
	td.CmpTrue(t, r.Equals(et.NewRectInt(1, 2, 3, 4)))
	td.Cmp(t, r.String(), "(x:1, y:2, width:3, height:4)")
}

func TestRectOffset(t *testing.T) {
	o := et.NewRectOffset(1, 2, 3, 4)
	td.Cmp(t, o.Horizontal(), int32(3))
	td.Cmp(t, o.Vertical(), int32(7))
	td.Cmp(t, o.String(), "RectOffset (l:1 r:2 t:3 b:4)")
	td.Cmp(t, et.RectOffset{}.String(), "RectOffset (l:0 r:0 t:0 b:0)")
}

func TestRangeIntAndLayerMask(t *testing.T) {
	td.Cmp(t, et.NewRangeInt(5, 10).End(), int32(15))

	m := et.LayerMask{Value: 1<<0 | 1<<5}
	td.CmpTrue(t, m.Has(0))
	td.CmpTrue(t, m.Has(5))
	td.CmpFalse(t, m.Has(1))
	td.CmpFalse(t, m.Has(-1))
	td.CmpFalse(t, m.Has(32))
	td.Cmp(t, m.String(), "33")
}

func TestAnimationCurve(t *testing.T) {
	keys := []et.Keyframe{
		et.NewKeyframe(1, 10),
		et.NewKeyframeTangents(0, 0, 1, -1),
		et.NewKeyframe(1, 10),
	}
	c := et.NewAnimationCurve(keys...)
	c.PostWrapMode = et.WrapModeLoop

	td.Cmp(t, c.Length(), 3)
	td.Cmp(t, c.Keys, keys, "unsorted, duplicates kept")
	td.Cmp(t, c.PreWrapMode, et.WrapModeDefault)

	clone := c.Clone()
	td.CmpTrue(t, clone.Equals(c))
	clone.Keys[0].Value = 99
	td.Cmp(t, c.Keys[0].Value, float32(10), "clone shares nothing")
	td.CmpFalse(t, clone.Equals(c))

	other := c.Clone()
	other.PreWrapMode = et.WrapModePingPong
	td.CmpFalse(t, other.Equals(c))

	td.Cmp(t, et.AnimationCurve{}.Clone().Keys, td.Nil())
	td.CmpTrue(t, et.NewAnimationCurve().Equals(et.AnimationCurve{}))

	td.Cmp(t, et.NewKeyframeTangents(1, 2, 0.5, 0).String(), "Keyframe(time: 1.0, value: 2.0, in: 0.5, out: 0.0)")
}

func TestGradient(t *testing.T) {
	g := et.Gradient{
		ColorKeys: []et.GradientColorKey{
			et.NewGradientColorKey(et.ColorRed, 0),
			et.NewGradientColorKey(et.ColorBlue, 1),
		},
		AlphaKeys: []et.GradientAlphaKey{
			et.NewGradientAlphaKey(1, 0),
		},
		Mode: et.GradientModeFixed,
	}

	clone := g.Clone()
	td.CmpTrue(t, clone.Equals(g))

	clone.ColorKeys[1].Time = 0.5
	td.Cmp(t, g.ColorKeys[1].Time, float32(1), "clone shares nothing")
	td.CmpFalse(t, clone.Equals(g))

	clone = g.Clone()
	clone.AlphaKeys[0].Alpha = 0
	td.CmpFalse(t, clone.Equals(g))

	clone = g.Clone()
	clone.Mode = et.GradientModeBlend
	td.CmpFalse(t, clone.Equals(g))

	td.Cmp(t, et.Gradient{}.Clone(), et.Gradient{})
}

func TestMatrix4x4(t *testing.T) {
	m := et.Matrix4x4{
		M00: 0, M01: 1, M02: 2, M03: 3,
		M10: 10, M11: 11, M12: 12, M13: 13,
		M20: 20, M21: 21, M22: 22, M23: 23,
		M30: 30, M31: 31, M32: 32, M33: 33,
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			got, err := m.At(row, col)
			td.CmpNoError(t, err)
			td.Cmp(t, got, float32(row*10+col), "row %v col %v", row, col)
		}
	}

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, err := m.At(idx[0], idx[1])
		td.CmpTrue(t, errors.Is(err, et.ErrIndexOutOfRange), "%v: %v", idx, err)
	}

	td.CmpTrue(t, m.Equals(m))
	td.CmpFalse(t, m.Equals(et.Matrix4x4Identity))
	td.Cmp(t, et.Matrix4x4Identity.String(),
		"1.00000\t0.00000\t0.00000\t0.00000\n"+
			"0.00000\t1.00000\t0.00000\t0.00000\n"+
			"0.00000\t0.00000\t1.00000\t0.00000\n"+
			"0.00000\t0.00000\t0.00000\t1.00000\n")
	td.Cmp(t, et.Matrix4x4Zero, et.Matrix4x4{})
}

func TestEnums(t *testing.T) {
	td.Cmp(t, et.WrapModeClamp, et.WrapModeOnce)
	td.Cmp(t, et.WrapModeClamp.String(), "Once")
	td.Cmp(t, et.WrapModePingPong.String(), "PingPong")
	td.Cmp(t, et.WrapModeClampForever.String(), "ClampForever")
	td.Cmp(t, et.WrapModeDefault.String(), "Default")
	td.Cmp(t, et.WrapModeLoop.String(), "Loop")
	td.Cmp(t, et.WrapMode(3).String(), "WrapMode(3)")

	td.Cmp(t, et.GradientModeBlend.String(), "Blend")
	td.Cmp(t, et.GradientModeFixed.String(), "Fixed")
	td.Cmp(t, et.GradientMode(7).String(), "GradientMode(7)")

	td.Cmp(t, et.CollisionDetectionMode2DNone, et.CollisionDetectionMode2DDiscrete)
	td.Cmp(t, et.CollisionDetectionMode2DContinuous.String(), "Continuous")
	td.Cmp(t, et.CollisionDetectionMode2DNone.String(), "Discrete")
	td.Cmp(t, et.CollisionDetectionMode2D(2).String(), "CollisionDetectionMode2D(2)")

	td.Cmp(t, et.RigidbodyInterpolation2DNone.String(), "None")
	td.Cmp(t, et.RigidbodyInterpolation2DInterpolate.String(), "Interpolate")
	td.Cmp(t, et.RigidbodyInterpolation2DExtrapolate.String(), "Extrapolate")
	td.Cmp(t, et.RigidbodyInterpolation2D(-1).String(), "RigidbodyInterpolation2D(-1)")
}

func TestRigidbodyConstraints2D(t *testing.T) {
	td.Cmp(t, int32(et.RigidbodyConstraints2DFreezePosition), int32(3))
	td.Cmp(t, int32(et.RigidbodyConstraints2DFreezeAll), int32(7))
	td.CmpTrue(t, et.RigidbodyConstraints2DFreezeAll.Has(et.RigidbodyConstraints2DFreezeRotation))
	td.CmpFalse(t, et.RigidbodyConstraints2DFreezePositionX.Has(et.RigidbodyConstraints2DFreezePosition))

	testCases := []struct {
		c    et.RigidbodyConstraints2D
		want string
	}{
		{et.RigidbodyConstraints2DNone, "None"},
		{et.RigidbodyConstraints2DFreezeAll, "FreezeAll"},
		{et.RigidbodyConstraints2DFreezePosition, "FreezePosition"},
		{et.RigidbodyConstraints2DFreezePositionY, "FreezePositionY"},
		{et.RigidbodyConstraints2DFreezePositionX | et.RigidbodyConstraints2DFreezeRotation, "FreezePositionX|FreezeRotation"},
		{et.RigidbodyConstraints2DFreezeAll | 8, "FreezePosition|FreezeRotation|8"},
	}

	for _, tC := range testCases {
		t.Run(tC.want, func(t *testing.T) {
			td.Cmp(t, tC.c.String(), tC.want)
		})
	}
}
