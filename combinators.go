package stepparse

// Pure returns a parser that has already committed to value without having
// consumed any input: the applicative/monadic return.
func Pure[S any, R any](value R) Term[S, R] {
	return Result[S, R](nil, value)
}

// Map applies f to every committed result of p, recursing structurally
// through every variant that stays meaningful across a change of result
// type. ResultPart, LookAhead and LookAheadIgnore are all still operating in
// terms of the original type A -- there is no way to rewrite their pending
// transformation or their continuation in place without first knowing A's
// value -- so Map defers those to resolve and waits for p to commit or fail.
func Map[S any, A any, B any](f func(A) B, p Term[S, A]) Term[S, B] {
	switch t := force[S, A](p).(type) {
	case failureTerm[S, A]:
		return Failure[S, B]()
	case resultTerm[S, A]:
		return Result(t.tail, f(t.value))
	case choiceTerm[S, A]:
		return Or(Map(f, t.p1), Map(f, t.p2))
	case committedChoiceTerm[S, A]:
		return CommittedOr(Map(f, t.p1), Map(f, t.p2))
	case moreTerm[S, A]:
		g := t.g
		return More(func(x S) Term[S, B] { return Map(f, g(x)) })
	default:
		return resolve(func(pf Term[S, A]) Term[S, B] { return Map(f, pf) }, p)
	}
}

// PMap is Map's monoid-to-monoid counterpart: when both A and B are
// monoidal, a ResultPart's pending prefix can be translated eagerly, by
// applying f to the prefix evaluated at ma.Empty and re-wrapping with mb's
// Append, instead of waiting for p to fully commit the way plain Map must.
// This is what lets a streamed monoidal result keep streaming across a
// result-type change instead of stalling until EOF.
func PMap[S any, A any, B any](ma Monoid[A], mb Monoid[B], f func(A) B, p Term[S, A]) Term[S, B] {
	switch t := force(p).(type) {
	case failureTerm[S, A]:
		return Failure[S, B]()
	case resultTerm[S, A]:
		return Result(t.tail, f(t.value))
	case resultPartTerm[S, A]:
		g := t.f
		prefixB := f(g(ma.Empty))
		return resultPart(func(b B) B { return mb.Append(prefixB, b) }, PMap(ma, mb, f, t.p))
	case choiceTerm[S, A]:
		return Or(PMap(ma, mb, f, t.p1), PMap(ma, mb, f, t.p2))
	case committedChoiceTerm[S, A]:
		return CommittedOr(PMap(ma, mb, f, t.p1), PMap(ma, mb, f, t.p2))
	case moreTerm[S, A]:
		g := t.g
		return More(func(x S) Term[S, B] { return PMap(ma, mb, f, g(x)) })
	default:
		return resolve(func(pf Term[S, A]) Term[S, B] { return PMap(ma, mb, f, pf) }, p)
	}
}

// Ap is applicative sequencing: once pf has committed to a function, that
// function is mapped across pa after replaying pf's pushback tail into it.
func Ap[S any, A any, B any](pf Term[S, func(A) B], pa Term[S, A]) Term[S, B] {
	switch t := force(pf).(type) {
	case failureTerm[S, func(A) B]:
		return Failure[S, B]()
	case resultTerm[S, func(A) B]:
		return Map(t.value, FeedAll(t.tail, pa))
	case choiceTerm[S, func(A) B]:
		return Or(Ap(t.p1, pa), Ap(t.p2, pa))
	case committedChoiceTerm[S, func(A) B]:
		return CommittedOr(Ap(t.p1, pa), Ap(t.p2, pa))
	case moreTerm[S, func(A) B]:
		g := t.g
		return More(func(x S) Term[S, B] { return Ap(g(x), pa) })
	default:
		return resolve(func(pf2 Term[S, func(A) B]) Term[S, B] { return Ap(pf2, pa) }, pf)
	}
}

// Bind is monadic sequencing: k is applied to p's committed value, with p's
// pushback tail replayed into whatever Term k produces.
func Bind[S any, A any, B any](p Term[S, A], k func(A) Term[S, B]) Term[S, B] {
	switch t := force(p).(type) {
	case failureTerm[S, A]:
		return Failure[S, B]()
	case resultTerm[S, A]:
		return FeedAll(t.tail, k(t.value))
	case choiceTerm[S, A]:
		return Or(Bind(t.p1, k), Bind(t.p2, k))
	case committedChoiceTerm[S, A]:
		return CommittedOr(Bind(t.p1, k), Bind(t.p2, k))
	case moreTerm[S, A]:
		g := t.g
		return More(func(x S) Term[S, B] { return Bind(g(x), k) })
	default:
		return resolve(func(pf Term[S, A]) Term[S, B] { return Bind(pf, k) }, p)
	}
}

// Then is monadic sequencing with the left value discarded. A ResultPart on
// the left collapses immediately, since its pending transformation would
// only ever be applied to a value nothing downstream can see. A LookAhead on
// the left becomes a LookAheadIgnore: nothing past Then needs p's result
// type anymore, only whether it succeeded and the tokens fed to it while it
// ran -- which is exactly what LookAheadIgnore's own Feed rule replays into
// q, the same way LookAhead's replays into its own continuation.
func Then[S any, A any, B any](p Term[S, A], q Term[S, B]) Term[S, B] {
	switch t := force(p).(type) {
	case failureTerm[S, A]:
		return Failure[S, B]()
	case resultTerm[S, A]:
		return FeedAll(t.tail, q)
	case resultPartTerm[S, A]:
		return Then(t.p, q)
	case choiceTerm[S, A]:
		return Or(Then(t.p1, q), Then(t.p2, q))
	case committedChoiceTerm[S, A]:
		return CommittedOr(Then(t.p1, q), Then(t.p2, q))
	case moreTerm[S, A]:
		g := t.g
		return More(func(x S) Term[S, B] { return Then(g(x), q) })
	case lookAheadTerm[S, A]:
		return lookAheadIgnoreInto[S, B](newProbe[S, A](t.p), false, func() Term[S, B] { return q })
	case lookAheadIgnoreTerm[S, A]:
		k := t.k
		return lookAheadIgnoreInto[S, B](t.probe, t.negate, func() Term[S, B] { return Then(k(), q) })
	default:
		panic("stepparse: unknown Term variant")
	}
}

// headIsResult reports whether t is a Result, or a Choice whose left spine
// eventually reaches one -- the shape Or tries to keep on the left so that
// reading off results stays a simple left-leaning traversal.
func headIsResult[S any, R any](t Term[S, R]) bool {
	switch v := force(t).(type) {
	case resultTerm[S, R]:
		return true
	case choiceTerm[S, R]:
		return headIsResult(v.p1)
	default:
		return false
	}
}

// Or is nondeterministic alternation (<|>). Failure is its identity; two
// still-running operands merge into a single More that races both
// derivatives; otherwise a Choice is built with whichever operand already
// carries a result pulled leftward.
func Or[S any, R any](p, q Term[S, R]) Term[S, R] {
	p, q = force(p), force(q)
	if isFailure(p) {
		return q
	}
	if isFailure(q) {
		return p
	}
	if mp, ok := p.(moreTerm[S, R]); ok {
		if mq, ok := q.(moreTerm[S, R]); ok {
			gp, gq := mp.g, mq.g
			return More(func(x S) Term[S, R] { return Or(gp(x), gq(x)) })
		}
	}
	if headIsResult(q) && !headIsResult(p) {
		return choiceTerm[S, R]{p1: q, p2: p}
	}
	return choiceTerm[S, R]{p1: p, p2: q}
}

// CommittedOr is committed-left alternation (<<|>). Failure is its
// identity; if p already has a result, q is pruned entirely; a
// CommittedLeftChoice on the left absorbs the new right operand into its own
// right branch instead of nesting, so a chain of <<|> stays a single flat
// committed choice; two still-running operands merge like Or does.
func CommittedOr[S any, R any](p, q Term[S, R]) Term[S, R] {
	p, q = force(p), force(q)
	if isFailure(p) {
		return q
	}
	if isFailure(q) {
		return p
	}
	if HasResult(p) {
		return p
	}
	if cp, ok := p.(committedChoiceTerm[S, R]); ok {
		return committedChoiceTerm[S, R]{p1: cp.p1, p2: CommittedOr(cp.p2, q)}
	}
	if mp, ok := p.(moreTerm[S, R]); ok {
		if mq, ok := q.(moreTerm[S, R]); ok {
			gp, gq := mp.g, mq.g
			return More(func(x S) Term[S, R] { return CommittedOr(gp(x), gq(x)) })
		}
	}
	return committedChoiceTerm[S, R]{p1: p, p2: q}
}

// Concat is greedy-left monoidal concatenation (><): once p1 commits with
// value r1 and pushback tail t, the combined parser streams out
// mappend(r1, ·) as a ResultPart wrapped around p2 fed with t. A LookAhead
// on the left contributes nothing to the concatenation: it is turned into a
// LookAheadIgnore whose continuation is p2 rather than waiting on resolve.
func Concat[S any, R any](m Monoid[R], p1, p2 Term[S, R]) Term[S, R] {
	switch t := force(p1).(type) {
	case failureTerm[S, R]:
		return Failure[S, R]()
	case resultTerm[S, R]:
		r1 := t.value
		return resultPart(func(r R) R { return m.Append(r1, r) }, FeedAll(t.tail, p2))
	case choiceTerm[S, R]:
		return Or(Concat(m, t.p1, p2), Concat(m, t.p2, p2))
	case committedChoiceTerm[S, R]:
		return CommittedOr(Concat(m, t.p1, p2), Concat(m, t.p2, p2))
	case moreTerm[S, R]:
		g := t.g
		return More(func(x S) Term[S, R] { return Concat(m, g(x), p2) })
	case lookAheadTerm[S, R]:
		// A LookAhead never consumes, so its own committed value contributes
		// nothing to the monoid: p2 sees exactly the tokens t.p peeked at,
		// replayed via LookAheadIgnore, the same conversion Then uses.
		return lookAheadIgnoreInto[S, R](newProbe[S, R](t.p), false, func() Term[S, R] { return p2 })
	default:
		return resolve(func(pf Term[S, R]) Term[S, R] { return Concat(m, pf, p2) }, p1)
	}
}

// ParallelConcat is the bidirectional-commit concatenation (>><) that the
// many*/manyTill family is built on. It behaves exactly like Concat once p1
// has genuinely committed to a Result. Its distinguishing behavior is at a
// CommittedLeftChoice: there, p1 is already racing "keep going" against an
// available fallback, so ParallelConcat races feeding the next token into
// the whole of that choice against letting p2 claim the token under the
// assumption p1 is in fact done (by feeding p1 EOF first) -- which is what
// lets many0-style repetition stop as soon as continuing would fail, without
// needing a token of lookahead of its own.
func ParallelConcat[S any, R any](m Monoid[R], p1, p2 Term[S, R]) Term[S, R] {
	switch t := force(p1).(type) {
	case failureTerm[S, R]:
		return Failure[S, R]()
	case resultTerm[S, R]:
		r1 := t.value
		return resultPart(func(r R) R { return m.Append(r1, r) }, FeedAll(t.tail, p2))
	case choiceTerm[S, R]:
		return Or(ParallelConcat(m, t.p1, p2), ParallelConcat(m, t.p2, p2))
	case committedChoiceTerm[S, R]:
		whole := p1
		return committedChoiceTerm[S, R]{
			p1: More(func(x S) Term[S, R] {
				return CommittedOr(
					ParallelConcat(m, Feed(x, whole), p2),
					ParallelConcat(m, FeedEOF(whole), Feed(x, p2)),
				)
			}),
			p2: ParallelConcat(m, FeedEOF(whole), p2),
		}
	case moreTerm[S, R]:
		g := t.g
		return More(func(x S) Term[S, R] { return ParallelConcat(m, g(x), p2) })
	case lookAheadTerm[S, R]:
		return lookAheadIgnoreInto[S, R](newProbe[S, R](t.p), false, func() Term[S, R] { return p2 })
	default:
		return resolve(func(pf Term[S, R]) Term[S, R] { return ParallelConcat(m, pf, p2) }, p1)
	}
}

func asResult[S any, R any](t Term[S, R]) (resultTerm[S, R], bool) {
	r, ok := force(t).(resultTerm[S, R])
	return r, ok
}

// And is parallel conjunction: it succeeds only once both pa and pb have
// each succeeded against the same input, pairing their results. As soon as
// one side commits, the other is finalized with FeedEOF so the pairing
// doesn't demand more input than the slower side actually needed; until
// then every token is fed into both sides in lockstep, and at end of input
// both sides are finalized and paired. A side that finalizes to anything
// other than a single Result is not paired, and And fails. Component-wise
// streaming of still-partial results (as opposed to this commit-then-pair
// scheme) is a documented simplification; see DESIGN.md.
func And[S any, A any, B any](pa Term[S, A], pb Term[S, B]) Term[S, Pair[A, B]] {
	if isFailure(pa) || isFailure(pb) {
		return Failure[S, Pair[A, B]]()
	}
	ra, aDone := asResult(pa)
	rb, bDone := asResult(pb)
	switch {
	case aDone && bDone:
		tail := ra.tail
		if len(rb.tail) > len(tail) {
			tail = rb.tail
		}
		return Result(tail, Pair[A, B]{First: ra.value, Second: rb.value})
	case aDone:
		if rbf, ok := asResult(FeedEOF(pb)); ok {
			return Result(ra.tail, Pair[A, B]{First: ra.value, Second: rbf.value})
		}
		return Failure[S, Pair[A, B]]()
	case bDone:
		if raf, ok := asResult(FeedEOF(pa)); ok {
			return Result(rb.tail, Pair[A, B]{First: raf.value, Second: rb.value})
		}
		return Failure[S, Pair[A, B]]()
	default:
		wait := More(func(x S) Term[S, Pair[A, B]] {
			return And(Feed(x, pa), Feed(x, pb))
		})
		anyToken := More(func(x S) Term[S, S] { return Result[S, S](nil, x) })
		atEOF := lookAheadIgnoreInto[S, Pair[A, B]](newProbe[S, S](anyToken), true, func() Term[S, Pair[A, B]] {
			fa, fb := FeedEOF(pa), FeedEOF(pb)
			_, aOK := asResult(fa)
			_, bOK := asResult(fb)
			if !aOK || !bOK {
				return Failure[S, Pair[A, B]]()
			}
			return And(fa, fb)
		})
		return Or(wait, atEOF)
	}
}

// AndThen is ordered conjunction: pa's result fills the first slot of the
// pair immediately, streamed as a ResultPart with mb's mempty standing in
// for the second slot, and pb's eventual results fill the second slot once
// pa has committed.
func AndThen[S any, A any, B any](ma Monoid[A], mb Monoid[B], pa Term[S, A], pb Term[S, B]) Term[S, Pair[A, B]] {
	switch t := force(pa).(type) {
	case failureTerm[S, A]:
		return Failure[S, Pair[A, B]]()
	case resultTerm[S, A]:
		r1 := t.value
		rest := Map(func(b B) Pair[A, B] { return Pair[A, B]{First: ma.Empty, Second: b} }, FeedAll(t.tail, pb))
		return resultPart(func(p Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{First: r1, Second: p.Second}
		}, rest)
	case choiceTerm[S, A]:
		return Or(AndThen(ma, mb, t.p1, pb), AndThen(ma, mb, t.p2, pb))
	case committedChoiceTerm[S, A]:
		return CommittedOr(AndThen(ma, mb, t.p1, pb), AndThen(ma, mb, t.p2, pb))
	case moreTerm[S, A]:
		g := t.g
		return More(func(x S) Term[S, Pair[A, B]] { return AndThen(ma, mb, g(x), pb) })
	default:
		return resolve(func(pf Term[S, A]) Term[S, Pair[A, B]] { return AndThen(ma, mb, pf, pb) }, pa)
	}
}

// headPrefersCommit reports whether t's head is a shape Longest should
// treat as "already settled" -- a Result, or a LookAhead which by
// definition never consumes -- as opposed to a sibling genuinely still
// waiting on another token.
func headPrefersCommit[S any, R any](t Term[S, R]) bool {
	switch force(t).(type) {
	case resultTerm[S, R], lookAheadTerm[S, R]:
		return true
	default:
		return false
	}
}

// Longest rewrites p so that wherever it offers a choice between a branch
// still waiting for input and a sibling that has already committed (or is
// merely peeking via LookAhead), the waiting branch is preferred, by
// flipping the pair into a CommittedLeftChoice with the waiting branch
// first. If more input never actually arrives, ordinary FeedEOF semantics
// fall back to whatever committed result is available.
func Longest[S any, R any](p Term[S, R]) Term[S, R] {
	switch t := force(p).(type) {
	case choiceTerm[S, R]:
		l, r := Longest(t.p1), Longest(t.p2)
		switch {
		case headPrefersCommit(r) && !headPrefersCommit(l):
			return committedChoiceTerm[S, R]{p1: l, p2: r}
		case headPrefersCommit(l) && !headPrefersCommit(r):
			return committedChoiceTerm[S, R]{p1: r, p2: l}
		default:
			return choiceTerm[S, R]{p1: l, p2: r}
		}
	case committedChoiceTerm[S, R]:
		return committedChoiceTerm[S, R]{p1: Longest(t.p1), p2: Longest(t.p2)}
	case moreTerm[S, R]:
		g := t.g
		return More(func(x S) Term[S, R] { return Longest(g(x)) })
	case resultPartTerm[S, R]:
		return resultPart(t.f, Longest(t.p))
	default:
		return p
	}
}
