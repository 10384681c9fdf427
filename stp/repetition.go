package stp

import "github.com/flowdev/stepparse"

// While matches zero or more tokens satisfying pred, streaming each match
// out as soon as it commits. Unlike a hand-rolled loop with a
// zero-consumption guard, non-consuming repetition is structurally
// impossible here: every iteration is built from ParallelConcat over a
// parser (Satisfy) that always either consumes exactly one token or fails,
// so there is no shape for an infinite no-progress loop to take.
func While[S any](pred func(S) bool) stepparse.Term[S, []S] {
	return Many0(stepparse.SliceMonoid[S](), stepparse.Map(func(x S) []S { return []S{x} }, Satisfy(pred)))
}

// While1 is While's non-empty counterpart: it requires at least one token
// to satisfy pred.
func While1[S any](pred func(S) bool) stepparse.Term[S, []S] {
	return Many1(stepparse.SliceMonoid[S](), stepparse.Map(func(x S) []S { return []S{x} }, Satisfy(pred)))
}

// Many0 repeats p zero or more times, combining results with m.Append and
// streaming each repetition's contribution out via ParallelConcat's
// CommittedLeftChoice-based early stop, so the combinator itself (not a
// caller-supplied lookahead token) decides when to stop repeating.
func Many0[S any, R any](m stepparse.Monoid[R], p stepparse.Term[S, R]) stepparse.Term[S, R] {
	return stepparse.CommittedOr(
		stepparse.ParallelConcat(m, p, stepparse.Lazy(func() stepparse.Term[S, R] { return Many0(m, p) })),
		stepparse.Pure[S, R](m.Empty),
	)
}

// Many1 is Many0's non-empty counterpart: it requires p to succeed at least
// once before allowing the same zero-or-more continuation as Many0.
func Many1[S any, R any](m stepparse.Monoid[R], p stepparse.Term[S, R]) stepparse.Term[S, R] {
	return stepparse.ParallelConcat(m, p, Many0(m, p))
}

// ManyTill repeats p, accumulating with m, until end succeeds; end's own
// result is discarded and not counted as one of p's repetitions. It is
// built the same way Many0 is, but with end standing in for the "give up
// and stop" branch instead of Pure(mempty).
func ManyTill[S any, R any, E any](m stepparse.Monoid[R], p stepparse.Term[S, R], end stepparse.Term[S, E]) stepparse.Term[S, R] {
	return stepparse.CommittedOr(
		stepparse.ParallelConcat(m, p, stepparse.Lazy(func() stepparse.Term[S, R] { return ManyTill(m, p, end) })),
		stepparse.Then(end, stepparse.Pure[S, R](m.Empty)),
	)
}

// AcceptAll accepts every remaining token as a single slice, and only ever
// stops at EOF.
func AcceptAll[S any]() stepparse.Term[S, []S] {
	return Many0(stepparse.SliceMonoid[S](), stepparse.Map(func(x S) []S { return []S{x} }, AnyToken[S]()))
}
