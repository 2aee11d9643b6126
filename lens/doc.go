// Package lens provides small, composable field accessors for deep reads and
// in-place mutation of nested values.
//
// An [Accessor] is an immutable descriptor of how to reach one field inside a
// larger value. It holds no reference to any particular instance; build it
// once and reuse it against unboundedly many roots. Accessors compose with
// [Compose] to focus through nested structs, and extend to slice-typed fields
// via the *At functions.
//
// Two representations back an accessor:
//   - a projection function (see [FromFunc]) — always safe, the default
//   - a byte offset (see [UnsafeFromOffset]) — applied with pointer
//     arithmetic; sound only when the offset comes from a checked facility
//     such as unsafe.Offsetof
//
// Both forms must denote the same storage location for every root instance
// and are freely interchangeable, including under composition.
//
// Accessors are safe for concurrent read use. Mutating operations require the
// caller to hold exclusive access to the root for the duration of the call;
// the package performs no synchronization of its own.
package lens
