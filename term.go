// Package stepparse implements an incremental parser-combinator core.
//
// A parser is a first-class value, a Term, that consumes input tokens one at
// a time via Feed and may carry a committed or partial result before all
// input has arrived. Feeding a token to a Term yields another Term: the
// derivative of the original parser with respect to that token, in the sense
// of Brzozowski. Partial results accumulate monoidally (see Monoid) so that
// long outputs can be streamed out as input arrives, rather than only once
// parsing is complete.
//
// The package is generic over the token type S (only ever compared for
// equality, never inspected structurally by the core) and the result type R
// (required to be a Monoid for the streaming-flavored combinators). Concrete
// token alphabets, grammar kits, source-location tracking, and I/O all live
// outside this package; see the stp package for a standard vocabulary of
// primitive and derived parsers built on top of the core in this package.
package stepparse

import "sync"

// Term is a parser value over token type S producing result type R.
// It is always exactly one of the variants constructed by Failure, Result,
// More, Lazy, or the internal resultPart/choice/committedChoice/lookAhead/
// lookAheadIgnore constructors. Term values are immutable; Feed and FeedEOF
// always return a new value rather than mutating the receiver, so a Term can
// be shared freely across goroutines and fed along more than one path.
type Term[S any, R any] interface {
	isTerm()
}

// failureTerm represents a parser for which no success is possible anymore.
// Failure is absorbing in sequencing and identity in alternation.
type failureTerm[S any, R any] struct{}

func (failureTerm[S, R]) isTerm() {}

// Failure returns the parser that can never succeed.
func Failure[S any, R any]() Term[S, R] {
	return failureTerm[S, R]{}
}

func isFailure[S any, R any](t Term[S, R]) bool {
	_, ok := force[S, R](t).(failureTerm[S, R])
	return ok
}

// resultTerm is a committed result together with the tokens that were fed
// into the parser after it committed (the pushback tail). Those tokens are
// replayed when this Result is sequenced with another parser.
type resultTerm[S any, R any] struct {
	tail  []S
	value R
}

func (resultTerm[S, R]) isTerm() {}

// Result returns a parser that has already committed to value, having read
// (but not consumed, from the perspective of whatever comes next) tail.
func Result[S any, R any](tail []S, value R) Term[S, R] {
	return resultTerm[S, R]{tail: tail, value: value}
}

// resultPartTerm is a left-pending transformation over a still-running
// parser: f is typically mappend(prefix, ·) for a monoidal R, and the
// partial result so far is f(mempty). resultPartTerm never wraps a
// resultTerm directly -- the resultPart constructor collapses that case
// into a plain Result immediately, preserving invariant 1.
type resultPartTerm[S any, R any] struct {
	f func(R) R
	p Term[S, R]
}

func (resultPartTerm[S, R]) isTerm() {}

// choiceTerm is nondeterministic alternation: both branches remain live
// until one of them commits.
type choiceTerm[S any, R any] struct {
	p1, p2 Term[S, R]
}

func (choiceTerm[S, R]) isTerm() {}

// committedChoiceTerm is alternation that discards the right branch as soon
// as the left branch has any result.
type committedChoiceTerm[S any, R any] struct {
	p1, p2 Term[S, R]
}

func (committedChoiceTerm[S, R]) isTerm() {}

// moreTerm awaits exactly one more token; g computes the derivative once it
// arrives.
type moreTerm[S any, R any] struct {
	g func(S) Term[S, R]
}

func (moreTerm[S, R]) isTerm() {}

// More returns a parser that needs exactly one more token before it can make
// any further progress.
func More[S any, R any](g func(S) Term[S, R]) Term[S, R] {
	return moreTerm[S, R]{g: g}
}

// lookAheadTerm runs p without consuming input (every token fed to the
// lookAhead is also threaded into the continuation via k's closure), then
// continues with k applied to p once p has committed; if p fails, the
// lookahead fails.
type lookAheadTerm[S any, R any] struct {
	p Term[S, R]
	k func(Term[S, R]) Term[S, R]
}

func (lookAheadTerm[S, R]) isTerm() {}

// innerProbe is a heap-erased handle onto a Term[S, R'] for some result type
// R' unrelated to the outer R. It exposes only what LookAheadIgnore needs:
// advancing by a token or by EOF, and asking whether the probed parser has
// resolved to a result or to failure. This is the Go stand-in for an
// existential type.
type innerProbe[S any] interface {
	feedProbe(x S) innerProbe[S]
	feedEOFProbe() innerProbe[S]
	hasResultProbe() bool
	isFailureProbe() bool
}

type probe[S any, R any] struct {
	p Term[S, R]
}

func newProbe[S any, R any](p Term[S, R]) innerProbe[S] {
	return probe[S, R]{p: p}
}

func (pr probe[S, R]) feedProbe(x S) innerProbe[S] {
	return probe[S, R]{p: Feed[S, R](x, pr.p)}
}

func (pr probe[S, R]) feedEOFProbe() innerProbe[S] {
	return probe[S, R]{p: FeedEOF[S, R](pr.p)}
}

func (pr probe[S, R]) hasResultProbe() bool {
	return HasResult[S, R](pr.p)
}

func (pr probe[S, R]) isFailureProbe() bool {
	return isFailure[S, R](pr.p)
}

// lookAheadIgnoreTerm is like lookAheadTerm, but the probed parser's result
// type is unrelated to the outer R and is therefore never inspected -- only
// whether it has resolved to a result (or, if negate is set, to a failure)
// matters. k takes no argument, since the probe's value is never needed.
type lookAheadIgnoreTerm[S any, R any] struct {
	probe  innerProbe[S]
	negate bool
	k      func() Term[S, R]
}

func (lookAheadIgnoreTerm[S, R]) isTerm() {}

// LookAhead runs p without consuming input: every token fed into the
// returned parser is fed to both p and (once p commits) onward, so that a sibling combinator sequenced after this one sees the same
// tokens p peeked at.
func LookAhead[S any, R any](p Term[S, R]) Term[S, R] {
	return lookAheadInto[S, R](p, func(pf Term[S, R]) Term[S, R] { return pf })
}

// LookAheadIgnore runs p purely to observe whether it resolves to a result
// or to a failure (the sense flipped when negate is set), without ever
// exposing p's own result type; k is invoked with no argument once p has
// resolved one way or the other.
func LookAheadIgnore[S any, Q any, R any](p Term[S, Q], negate bool, k func() Term[S, R]) Term[S, R] {
	return lookAheadIgnoreInto[S, R](newProbe[S, Q](p), negate, k)
}

// lazyTerm defers building its underlying Term until something actually
// inspects it. Go evaluates function arguments eagerly, so a self-recursive
// combinator definition like `many0(p) = p >>< many0(p) <<|> pure(mempty)`
// would try to build an infinitely deep term before Feed ever ran once,
// overflowing the stack at construction time rather than at some
// pathologically deep input. thunk is called at most once; its result is
// cached.
type lazyTerm[S any, R any] struct {
	thunk func() Term[S, R]
}

func (lazyTerm[S, R]) isTerm() {}

// Lazy wraps thunk so it is only invoked the first time the returned Term is
// actually pattern-matched against (by Feed, FeedEOF, HasResult, Results, or
// any other core function), not when Lazy itself is called. This is the
// core's trampoline: it turns what would otherwise be unbounded eager
// recursion in a combinator's own definition into on-demand expansion, one
// repetition at a time, as input actually arrives.
func Lazy[S any, R any](thunk func() Term[S, R]) Term[S, R] {
	var cached Term[S, R]
	var once sync.Once
	return lazyTerm[S, R]{thunk: func() Term[S, R] {
		once.Do(func() { cached = thunk() })
		return cached
	}}
}

// force unwraps any lazyTerm chain down to a concrete variant. Every
// function in this package that type-switches on a Term calls force on its
// argument(s) first.
func force[S any, R any](p Term[S, R]) Term[S, R] {
	for {
		lt, ok := p.(lazyTerm[S, R])
		if !ok {
			return p
		}
		p = lt.thunk()
	}
}
