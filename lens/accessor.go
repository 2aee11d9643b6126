package lens

import "unsafe"

// Accessor focuses a field of type F inside a whole of type T.
//
// The zero value is not a valid accessor; construct with [FromFunc] or
// [UnsafeFromOffset], or call a generated Acc* constructor.
type Accessor[T, F any] struct {
	proj     func(*T) *F
	offset   uintptr
	byOffset bool
}

// FromFunc builds an accessor from a projection function.
//
// The projection must be pure: for a given root it must always return a
// pointer to the same storage, and that location must depend only on the
// static layout of T, never on instance state. This constructor is always
// safe; no placeholder instance is ever dereferenced to derive a
// representation.
func FromFunc[T, F any](proj func(*T) *F) Accessor[T, F] {
	return Accessor[T, F]{proj: proj}
}

// UnsafeFromOffset builds an accessor from a byte offset into T.
//
// The offset must be the exact distance from the start of T to the field for
// every valid instance, e.g. unsafe.Offsetof(T{}.Field). Supplying any other
// value is a precondition violation with undefined behavior, not a
// recoverable error. Ordinary code should prefer [FromFunc] or the generated
// constructors.
func UnsafeFromOffset[T, F any](offset uintptr) Accessor[T, F] {
	return Accessor[T, F]{offset: offset, byOffset: true}
}

// Get returns a pointer aliasing the focused field inside root.
//
// The result reads and writes the underlying storage directly; holding it
// while mutating root through other means is the caller's concern.
func (a Accessor[T, F]) Get(root *T) *F {
	if a.byOffset {
		return (*F)(unsafe.Add(unsafe.Pointer(root), a.offset))
	}

	return a.proj(root)
}

// Set moves v into the focused field, discarding the previous value.
func (a Accessor[T, F]) Set(root *T, v F) {
	*a.Get(root) = v
}

// Update applies an in-place transformation to the focused field.
func (a Accessor[T, F]) Update(root *T, f func(*F)) {
	f(a.Get(root))
}

// Cloner is implemented by types that can produce an independent copy of
// themselves. Shallow-copyable types do not need it; it exists for values
// with interior sharing (slices, maps, pointers).
type Cloner[F any] interface {
	Clone() F
}

// SetClone writes a duplicate of *v into the field focused by a.
//
// Only the focused type F must implement [Cloner]; neither T nor any
// intermediate type along a composed path needs any duplication capability.
// This is a free function rather than a method so the Cloner constraint lands
// on F alone.
func SetClone[T any, F Cloner[F]](a Accessor[T, F], root *T, v *F) {
	*a.Get(root) = (*v).Clone()
}

// Compose chains two accessors into one focusing through both.
//
// The result projects exactly the location reached by applying outer then
// inner, and composition is associative. When both sides are offset-based the
// result is offset-based (one addition); otherwise the projections are
// chained. O(1) either way.
func Compose[T, F, V any](outer Accessor[T, F], inner Accessor[F, V]) Accessor[T, V] {
	if outer.byOffset && inner.byOffset {
		return Accessor[T, V]{offset: outer.offset + inner.offset, byOffset: true}
	}

	return Accessor[T, V]{proj: func(root *T) *V {
		return inner.Get(outer.Get(root))
	}}
}
