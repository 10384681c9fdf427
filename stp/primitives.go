// Package stp is the standard vocabulary of primitive and derived parsers
// built on top of the stepparse core. Everything here could be written by a
// caller directly against stepparse.Term; stp exists so common shapes (match
// one token, match a run of tokens, match a literal sequence) don't need to
// be rederived in every grammar.
package stp

import (
	"unicode"

	"github.com/flowdev/stepparse"
)

// AnyToken matches exactly one token of any value and returns it.
func AnyToken[S any]() stepparse.Term[S, S] {
	return stepparse.More(func(x S) stepparse.Term[S, S] {
		return stepparse.Result[S, S](nil, x)
	})
}

// Token matches exactly one token equal to want.
func Token[S comparable](want S) stepparse.Term[S, S] {
	return Satisfy(func(x S) bool { return x == want })
}

// Satisfy matches exactly one token for which pred returns true.
func Satisfy[S any](pred func(S) bool) stepparse.Term[S, S] {
	return stepparse.More(func(x S) stepparse.Term[S, S] {
		if pred(x) {
			return stepparse.Result[S, S](nil, x)
		}
		return stepparse.Failure[S, S]()
	})
}

// Count runs p exactly n times, collecting the n results with the supplied
// monoid's Append, starting from mempty; n <= 0 returns Pure(m.Empty)
// without ever touching p.
func Count[S any, R any](m stepparse.Monoid[R], n int, p stepparse.Term[S, R]) stepparse.Term[S, R] {
	if n <= 0 {
		return stepparse.Pure[S, R](m.Empty)
	}
	acc := p
	for i := 1; i < n; i++ {
		acc = stepparse.Concat(m, acc, p)
	}
	return acc
}

// String matches the exact sequence of tokens in want, returning want on
// success. It is built from Token and Concat over the single-element-slice
// monoid rather than special-cased, so it inherits the core's incremental
// streaming for free.
func String[S comparable](want []S) stepparse.Term[S, []S] {
	sliceOf := stepparse.SliceMonoid[S]()
	if len(want) == 0 {
		return stepparse.Pure[S, []S](nil)
	}
	acc := stepparse.Map(func(x S) []S { return []S{x} }, Token(want[0]))
	for _, x := range want[1:] {
		x := x
		acc = stepparse.Concat(sliceOf, acc, stepparse.Map(func(y S) []S { return []S{y} }, Token(x)))
	}
	return acc
}

// Str is String specialized to a Go string consumed as a byte stream,
// returning the matched string.
func Str(want string) stepparse.Term[byte, string] {
	return stepparse.Map(func(bs []byte) string { return string(bs) }, String([]byte(want)))
}

// PrefixOf consumes the longest prefix of the input that is also a prefix
// of want, comparing element-wise by equality. It never fails: the common
// prefix may be empty, and tokens past the first mismatch stay unconsumed.
func PrefixOf[S comparable](want []S) stepparse.Term[S, []S] {
	preds := make([]func(S) bool, len(want))
	for i, w := range want {
		w := w
		preds[i] = func(x S) bool { return x == w }
	}
	return WhilePrefixOf(preds)
}

// WhilePrefixOf is PrefixOf with a per-position predicate instead of
// equality against a fixed sequence: it consumes the longest input prefix
// whose i-th token satisfies preds[i], up to at most len(preds) tokens.
func WhilePrefixOf[S any](preds []func(S) bool) stepparse.Term[S, []S] {
	m := stepparse.SliceMonoid[S]()
	if len(preds) == 0 {
		return stepparse.Pure[S, []S](nil)
	}
	head := stepparse.Map(func(x S) []S { return []S{x} }, Satisfy(preds[0]))
	rest := preds[1:]
	return stepparse.CommittedOr(
		stepparse.ParallelConcat(m, head, stepparse.Lazy(func() stepparse.Term[S, []S] { return WhilePrefixOf(rest) })),
		stepparse.Pure[S, []S](nil),
	)
}

// Digit matches one ASCII decimal digit rune.
func Digit() stepparse.Term[rune, rune] {
	return Satisfy(func(r rune) bool { return r >= '0' && r <= '9' })
}

// Alpha matches one Unicode letter rune.
func Alpha() stepparse.Term[rune, rune] {
	return Satisfy(unicode.IsLetter)
}

// Space matches one Unicode whitespace rune.
func Space() stepparse.Term[rune, rune] {
	return Satisfy(unicode.IsSpace)
}
