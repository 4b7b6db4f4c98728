// Package fixture holds the primitive operations behind the testlib shared
// library: an in-place pair swap and a raw subtraction, defined once and
// instantiated per exported C type.
//
// Subtraction deliberately uses the language's native arithmetic. Fixed-width
// integers wrap modulo 2^width on overflow and underflow, floats follow
// IEEE-754 including NaN and infinity propagation. Nothing is trapped or
// reported; foreign callers specifically test the wraparound behavior.
package fixture

// Scalar is the closed set of primitive numeric types the shared library
// exports operations for.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Pair is a two-field record of a single scalar type. Field order matches
// the C tuple structs declared in testlib/include/testlib.h: a first, then b.
type Pair[T Scalar] struct {
	A T
	B T
}

// Swap exchanges the fields of the pair in place.
func (p *Pair[T]) Swap() {
	Swap(&p.A, &p.B)
}

// Swap exchanges the values behind a and b. Both pointers must be valid for
// the duration of the call; no checks are performed.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// Sub returns x - y using the type's native arithmetic.
func Sub[T Scalar](x, y T) T {
	return x - y
}
