package enginetypes

import "fmt"

// Keyframe is a point on an AnimationCurve with its tangents.
type Keyframe struct {
	Time, Value, InTangent, OutTangent float32
}

// NewKeyframe returns a keyframe with flat tangents.
func NewKeyframe(time, value float32) Keyframe {
	return Keyframe{Time: time, Value: value}
}

// NewKeyframeTangents returns a keyframe with the given tangents. It is the decode entry point.
func NewKeyframeTangents(time, value, inTangent, outTangent float32) Keyframe {
	return Keyframe{Time: time, Value: value, InTangent: inTangent, OutTangent: outTangent}
}

// String formats every field of k with DefaultFormat.
func (k Keyframe) String() string {
	return fmt.Sprintf("Keyframe(time: %v, value: %v, in: %v, out: %v)",
		FormatFloat(k.Time, ""), FormatFloat(k.Value, ""), FormatFloat(k.InTangent, ""), FormatFloat(k.OutTangent, ""))
}

// AnimationCurve is a sequence of keyframes and how to extrapolate beyond them.
//
// Keys keep the order they were given in; nothing sorts them, removes duplicates or computes tangents.
// It has no decode entry point; decoders assign its fields to a zero AnimationCurve.
type AnimationCurve struct {
	Keys         []Keyframe
	PostWrapMode WrapMode
	PreWrapMode  WrapMode
}

// NewAnimationCurve returns a curve through keys, in the given order.
func NewAnimationCurve(keys ...Keyframe) AnimationCurve {
	return AnimationCurve{Keys: keys}
}

// Length returns the number of keys.
func (c AnimationCurve) Length() int {
	return len(c.Keys)
}

// Clone returns a copy of c that shares nothing with it.
func (c AnimationCurve) Clone() AnimationCurve {
	if c.Keys != nil {
		keys := make([]Keyframe, len(c.Keys))
		copy(keys, c.Keys)
		c.Keys = keys
	}
	return c
}

// Equals returns true if c and o have the same wrap modes and exactly equal keys in the same order.
func (c AnimationCurve) Equals(o AnimationCurve) bool {
	if c.PostWrapMode != o.PostWrapMode || c.PreWrapMode != o.PreWrapMode || len(c.Keys) != len(o.Keys) {
		return false
	}
	for i := range c.Keys {
		if c.Keys[i] != o.Keys[i] {
			return false
		}
	}
	return true
}
