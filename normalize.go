package stepparse

// resultPart pushes f under any existing ResultPart/Result rather than
// nesting, keeping invariants 1 and 5: a Result never appears underneath a
// ResultPart, and two nested ResultParts normalize to a single one with the
// composed transformation.
func resultPart[S any, R any](f func(R) R, p Term[S, R]) Term[S, R] {
	switch t := force[S, R](p).(type) {
	case resultTerm[S, R]:
		return Result[S, R](t.tail, f(t.value))
	case resultPartTerm[S, R]:
		g := t.f
		return resultPartTerm[S, R]{f: func(r R) R { return f(g(r)) }, p: t.p}
	case failureTerm[S, R]:
		return p
	default:
		return resultPartTerm[S, R]{f: f, p: p}
	}
}

// resolve is used when a combinator cannot pattern-match p directly because
// it is one of the opaque variants (ResultPart, LookAhead, LookAheadIgnore).
// It produces a Choice of two branches: one that waits for exactly one more
// token and re-applies trans to the derivative, and one that applies trans
// to the end-of-input version of p, guarded by a negative lookahead over any
// single token so that the EOF branch only survives when no more input comes.
// Every combinator that calls resolve pattern-matches CommittedLeftChoice
// before falling through to its default case, so only the genuinely opaque
// variants (ResultPart across a type change, the lookaheads) ever arrive
// here and a plain Choice of the two branches is always the right shape.
func resolve[S any, R1 any, R2 any](trans func(Term[S, R1]) Term[S, R2], p Term[S, R1]) Term[S, R2] {
	debugf("resolve: deferring opaque %T behind a wait/EOF choice", force[S, R1](p))
	waitBranch := More(func(x S) Term[S, R2] {
		return trans(Feed[S, R1](x, p))
	})
	eofBranch := lookAheadIgnoreTerm[S, R2]{
		probe:  newProbe[S, S](More(func(x S) Term[S, S] { return Result[S, S](nil, x) })),
		negate: true, // only fire the EOF branch if there is truly no more input
		k: func() Term[S, R2] {
			return trans(FeedEOF[S, R1](p))
		},
	}
	return choiceTerm[S, R2]{p1: waitBranch, p2: eofBranch}
}

// lookAheadInto pushes a lookahead continuation inward through ResultPart,
// Choice, and nested lookaheads, resolving immediately against a p that has
// already committed or failed, and otherwise wrapping the still-running p in
// a lookAheadTerm so it can keep being fed.
func lookAheadInto[S any, R any](p Term[S, R], k func(Term[S, R]) Term[S, R]) Term[S, R] {
	switch t := force[S, R](p).(type) {
	case resultTerm[S, R]:
		return k(p)
	case failureTerm[S, R]:
		return Failure[S, R]()
	case resultPartTerm[S, R]:
		return resultPart(t.f, lookAheadInto[S, R](t.p, k))
	case choiceTerm[S, R]:
		return Or[S, R](lookAheadInto[S, R](t.p1, k), lookAheadInto[S, R](t.p2, k))
	case committedChoiceTerm[S, R]:
		return CommittedOr[S, R](lookAheadInto[S, R](t.p1, k), lookAheadInto[S, R](t.p2, k))
	case lookAheadTerm[S, R]:
		innerK := t.k
		return lookAheadTerm[S, R]{p: t.p, k: func(pf Term[S, R]) Term[S, R] {
			return lookAheadInto[S, R](innerK(pf), k)
		}}
	default:
		return lookAheadTerm[S, R]{p: p, k: k}
	}
}

// lookAheadIgnoreInto is the LookAheadIgnore analogue of lookAheadInto: it
// inspects only whether pr has resolved to a result or to a failure (with
// the sense flipped when negate is set, which is how the negative-lookahead
// primitives are built), and otherwise wraps pr and k back up for more
// input.
func lookAheadIgnoreInto[S any, R any](pr innerProbe[S], negate bool, k func() Term[S, R]) Term[S, R] {
	switch {
	case pr.isFailureProbe():
		if negate {
			return k()
		}
		return Failure[S, R]()
	case pr.hasResultProbe():
		if negate {
			return Failure[S, R]()
		}
		return k()
	default:
		return lookAheadIgnoreTerm[S, R]{probe: pr, negate: negate, k: k}
	}
}
