// Package seq provides an eager, immutable wrapper over an ordered
// sequence with chainable filter/transform operations.
//
// Every operation is a single order-preserving pass that returns a new
// wrapper; the terminal Sequence call unwraps to a concrete slice.
//
// Key operations:
// - From: wrap a slice (nil fails with fluent.ErrInvalidArgument)
// - Filter: keep elements matching a predicate
// - Transform/TryTransform: map elements to a new element type
// - Reduce: fold the elements left to right from a seed
// - Each: run side effects without changing the sequence
// - Sequence: terminal unwrap to a fresh slice
package seq
