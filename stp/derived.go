package stp

import "github.com/flowdev/stepparse"

// Optional makes p succeed with a zero value instead of failing outright.
// Failure is a normal Term variant rather than a mutable error field that
// could be suppressed after the fact, so "p, or nothing" really is Or(p,
// Pure(zero)), with both branches kept live. OptionMaybe is the committed
// variant that prunes the fallback as soon as p commits.
func Optional[S any, R any](zero R, p stepparse.Term[S, R]) stepparse.Term[S, R] {
	return stepparse.Or(p, stepparse.Pure[S, R](zero))
}

// OptionMaybe is Optional with the zero value wrapped so callers can tell
// "didn't match" apart from "matched and happened to equal zero".
func OptionMaybe[S any, R any](p stepparse.Term[S, R]) stepparse.Term[S, *R] {
	some := stepparse.Map(func(r R) *R { return &r }, p)
	return stepparse.CommittedOr(some, stepparse.Pure[S, *R](nil))
}

// Skip runs p and discards whatever it committed to, succeeding with
// m.Empty. Used to sequence a parser purely for its side effect of
// consuming input (e.g. whitespace) inside a monoidal Concat chain.
func Skip[S any, A any, R any](m stepparse.Monoid[R], p stepparse.Term[S, A]) stepparse.Term[S, R] {
	return stepparse.Then(p, stepparse.Pure[S, R](m.Empty))
}

// Eof succeeds with m.Empty only if there is truly no more input: a
// negative lookahead over AnyToken.
func Eof[S any, R any](m stepparse.Monoid[R]) stepparse.Term[S, R] {
	return stepparse.LookAheadIgnore[S, S, R](AnyToken[S](), true, func() stepparse.Term[S, R] {
		return stepparse.Pure[S, R](m.Empty)
	})
}

// LookAheadNot succeeds (without consuming input) exactly when p would
// fail, and fails exactly when p would succeed.
func LookAheadNot[S any, R any](p stepparse.Term[S, R]) stepparse.Term[S, struct{}] {
	return stepparse.LookAheadIgnore[S, R, struct{}](p, true, func() stepparse.Term[S, struct{}] {
		return stepparse.Pure[S, struct{}](struct{}{})
	})
}

// Between parses open, then inner, then close, returning inner's value and
// discarding open/close's.
func Between[S any, O any, R any, C any](open stepparse.Term[S, O], inner stepparse.Term[S, R], close stepparse.Term[S, C]) stepparse.Term[S, R] {
	return stepparse.Then(open, stepparse.Bind(inner, func(r R) stepparse.Term[S, R] {
		return stepparse.Then(close, stepparse.Pure[S, R](r))
	}))
}

// SepBy parses zero or more occurrences of p separated by sep, combining
// the p results with m and discarding sep's.
func SepBy[S any, R any, D any](m stepparse.Monoid[R], p stepparse.Term[S, R], sep stepparse.Term[S, D]) stepparse.Term[S, R] {
	return stepparse.CommittedOr(SepBy1(m, p, sep), stepparse.Pure[S, R](m.Empty))
}

// SepBy1 is SepBy's non-empty counterpart: at least one p must match.
func SepBy1[S any, R any, D any](m stepparse.Monoid[R], p stepparse.Term[S, R], sep stepparse.Term[S, D]) stepparse.Term[S, R] {
	rest := Many0(m, stepparse.Then(sep, p))
	return stepparse.Concat(m, p, rest)
}
