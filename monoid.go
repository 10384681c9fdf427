package stepparse

// Monoid packages the identity element and associative combine that the
// streaming-flavored combinators (Concat, ParallelConcat, PMap, the many*
// family, AndThen, Eof, Skip) need
// for a result type R. Go has no typeclass mechanism to let a generic
// constraint demand "R has an Empty and an Append", so the requirement is
// encoded as an explicit value parameter rather than runtime reflection: a
// Monoid[R] is passed to every combinator that accumulates results.
type Monoid[R any] struct {
	Empty  R
	Append func(a, b R) R
}

// StringMonoid is the Monoid for R = string: the empty string under
// concatenation.
var StringMonoid = Monoid[string]{
	Empty:  "",
	Append: func(a, b string) string { return a + b },
}

// SliceMonoid builds the Monoid for R = []T: the empty slice under
// append/concatenation.
func SliceMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Empty: nil,
		Append: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return out
		},
	}
}

// Pair is the result type of And and AndThen: both component results,
// kept side by side rather than merged.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// PairMonoid builds the Monoid for R = Pair[A, B] out of monoids for A and
// B, combining component-wise. AndThen takes ma and mb separately;
// PairMonoid(ma, mb) is the monoid under which AndThen's streamed partial
// result (first slot filled, second slot still mempty) is read, e.g. by
// ResultPrefix.
func PairMonoid[A any, B any](ma Monoid[A], mb Monoid[B]) Monoid[Pair[A, B]] {
	return Monoid[Pair[A, B]]{
		Empty: Pair[A, B]{First: ma.Empty, Second: mb.Empty},
		Append: func(x, y Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{First: ma.Append(x.First, y.First), Second: mb.Append(x.Second, y.Second)}
		},
	}
}
