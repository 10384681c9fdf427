package stepparse

// Feed rewrites p by consuming token x, returning the derivative of p with
// respect to x: the parser representing what remains to be parsed after
// that token. Feed never mutates p; it is a pure function from (x, p) to a
// new Term.
func Feed[S any, R any](x S, p Term[S, R]) Term[S, R] {
	switch t := force(p).(type) {
	case failureTerm[S, R]:
		return p
	case resultTerm[S, R]:
		tail := make([]S, len(t.tail)+1)
		copy(tail, t.tail)
		tail[len(t.tail)] = x
		return Result(tail, t.value)
	case resultPartTerm[S, R]:
		return resultPart(t.f, Feed(x, t.p))
	case choiceTerm[S, R]:
		return Or(Feed(x, t.p1), Feed(x, t.p2))
	case committedChoiceTerm[S, R]:
		return CommittedOr(Feed(x, t.p1), Feed(x, t.p2))
	case moreTerm[S, R]:
		return t.g(x)
	case lookAheadTerm[S, R]:
		k := t.k
		return lookAheadInto(Feed(x, t.p), func(pf Term[S, R]) Term[S, R] {
			return Feed(x, k(pf))
		})
	case lookAheadIgnoreTerm[S, R]:
		k := t.k
		return lookAheadIgnoreInto(t.probe.feedProbe(x), t.negate, func() Term[S, R] {
			return Feed(x, k())
		})
	default:
		panic("stepparse: unknown Term variant")
	}
}

// FeedEOF finalizes p: it signals that no more tokens will ever arrive.
// Every surviving More becomes Failure; every ResultPart pushes its pending
// transformation into whatever Result(s) its inner parser finalizes to.
func FeedEOF[S any, R any](p Term[S, R]) Term[S, R] {
	switch t := force(p).(type) {
	case failureTerm[S, R]:
		return p
	case resultTerm[S, R]:
		return p
	case resultPartTerm[S, R]:
		return pushInto(t.f, FeedEOF(t.p))
	case choiceTerm[S, R]:
		return Or(FeedEOF(t.p1), FeedEOF(t.p2))
	case committedChoiceTerm[S, R]:
		return CommittedOr(FeedEOF(t.p1), FeedEOF(t.p2))
	case moreTerm[S, R]:
		return Failure[S, R]()
	case lookAheadTerm[S, R]:
		k := t.k
		return lookAheadInto(FeedEOF(t.p), func(pf Term[S, R]) Term[S, R] {
			return FeedEOF(k(pf))
		})
	case lookAheadIgnoreTerm[S, R]:
		k := t.k
		return lookAheadIgnoreInto(t.probe.feedEOFProbe(), t.negate, func() Term[S, R] {
			return FeedEOF(k())
		})
	default:
		panic("stepparse: unknown Term variant")
	}
}

// pushInto pushes a pending ResultPart transformation into every Term
// variant, not only Result/Choice/Failure: a surviving More under a
// ResultPart at EOF becomes Failure, same as FeedEOF(More) does,
// CommittedLeftChoice recurses into both branches, and lookaheads push f
// into their continuations rather than being left undefined.
func pushInto[S any, R any](f func(R) R, p Term[S, R]) Term[S, R] {
	switch t := force(p).(type) {
	case failureTerm[S, R]:
		return p
	case resultTerm[S, R]:
		return Result(t.tail, f(t.value))
	case resultPartTerm[S, R]:
		g := t.f
		return pushInto(func(r R) R { return f(g(r)) }, t.p)
	case choiceTerm[S, R]:
		return choiceTerm[S, R]{p1: pushInto(f, t.p1), p2: pushInto(f, t.p2)}
	case committedChoiceTerm[S, R]:
		return committedChoiceTerm[S, R]{p1: pushInto(f, t.p1), p2: pushInto(f, t.p2)}
	case moreTerm[S, R]:
		return Failure[S, R]()
	case lookAheadTerm[S, R]:
		k := t.k
		return lookAheadTerm[S, R]{p: t.p, k: func(pf Term[S, R]) Term[S, R] {
			return pushInto(f, k(pf))
		}}
	case lookAheadIgnoreTerm[S, R]:
		k := t.k
		return lookAheadIgnoreTerm[S, R]{probe: t.probe, negate: t.negate, k: func() Term[S, R] {
			return pushInto(f, k())
		}}
	default:
		panic("stepparse: unknown Term variant")
	}
}
