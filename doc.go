// Package enginetypes reproduces the geometry and math value types of a game engine runtime,
// so tooling, servers and test harnesses can build, inspect and serialize engine-shaped data
// without linking against the engine.
//
// Every type is a plain value; copies are independent and safe to use from any goroutine.
// Their semantics follow the engine exactly, including its quirks:
//
//   - Vector2 equality is exact, while Vector3.Eq (the engine's == operator) is a squared distance test
//     against 9.99999943962493e-11. Vector3.Equals is exact.
//   - Quaternion.Eq compares rotations with a dot product threshold of 0.999998986721039, so a negated
//     quaternion, the same rotation, is not Eq.
//   - Bounds stores its extents but transmits its size.
//   - Vectors format with an invariant '.' separator and one fractional digit by default.
//
// Every struct type declares a wire.Table; stable wire keys, which members are derived or ignored,
// and which constructor decoders call. Catalogue returns them all, and CodecConfig a codec.Config using them.
package enginetypes
