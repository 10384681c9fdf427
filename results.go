package stepparse

// HasResult reports whether p carries a committed result in either branch
// of any Choice or CommittedLeftChoice, looking through ResultPart -- i.e.
// whether Results(p) would return at least one value without needing
// another token fed in first.
func HasResult[S any, R any](p Term[S, R]) bool {
	switch t := force(p).(type) {
	case resultTerm[S, R]:
		return true
	case resultPartTerm[S, R]:
		return HasResult(t.p)
	case choiceTerm[S, R]:
		return HasResult(t.p1) || HasResult(t.p2)
	case committedChoiceTerm[S, R]:
		return HasResult(t.p1) || HasResult(t.p2)
	default:
		return false
	}
}

// Results collects every committed result currently available from p,
// applying any pending ResultPart transformations along the way, in the
// left-to-right order the Choice spine presents them.
func Results[S any, R any](p Term[S, R]) []R {
	return appendResults(nil, p, func(r R) R { return r })
}

func appendResults[S any, R any](acc []R, p Term[S, R], f func(R) R) []R {
	switch t := force(p).(type) {
	case resultTerm[S, R]:
		return append(acc, f(t.value))
	case resultPartTerm[S, R]:
		g := t.f
		return appendResults(acc, t.p, func(r R) R { return f(g(r)) })
	case choiceTerm[S, R]:
		acc = appendResults(acc, t.p1, f)
		return appendResults(acc, t.p2, f)
	case committedChoiceTerm[S, R]:
		acc = appendResults(acc, t.p1, f)
		return appendResults(acc, t.p2, f)
	default:
		return acc
	}
}

// FirstResult returns the leftmost committed result together with its
// pushback tail, or ok == false when p has no committed result yet.
func FirstResult[S any, R any](p Term[S, R]) (R, []S, bool) {
	switch t := force(p).(type) {
	case resultTerm[S, R]:
		return t.value, t.tail, true
	case resultPartTerm[S, R]:
		if v, tail, ok := FirstResult(t.p); ok {
			return t.f(v), tail, true
		}
	case choiceTerm[S, R]:
		if v, tail, ok := FirstResult(t.p1); ok {
			return v, tail, true
		}
		return FirstResult(t.p2)
	case committedChoiceTerm[S, R]:
		if v, tail, ok := FirstResult(t.p1); ok {
			return v, tail, true
		}
		return FirstResult(t.p2)
	}
	var zero R
	return zero, nil, false
}

// ResultPrefix splits off the partial result pending at the head of p:
// for a ResultPart it is the accumulated prefix evaluated at m.Empty, with
// the still-running inner parser returned as the continuation; for a
// Result it is the whole committed value, with an mempty placeholder (tail
// preserved) returned in its place. ok is false when p's head carries no
// pending output at all, in which case p itself comes back unchanged.
func ResultPrefix[S any, R any](m Monoid[R], p Term[S, R]) (R, Term[S, R], bool) {
	switch t := force(p).(type) {
	case resultTerm[S, R]:
		return t.value, Result(t.tail, m.Empty), true
	case resultPartTerm[S, R]:
		return t.f(m.Empty), t.p, true
	default:
		return m.Empty, p, false
	}
}

// Partial is one entry of PartialResults: a result (possibly only a prefix
// of what the parse will eventually produce) together with the parser that
// continues from the point that result was split off at.
type Partial[S any, R any] struct {
	Value R
	Next  Term[S, R]
}

// PartialResults enumerates every reachable partial result of p as
// (value, continuation) pairs: committed Results paired with an mempty
// placeholder, ResultPart heads paired with their still-running inner
// parser. CommittedLeftChoice contributes its left branch's pairs when
// there are any, and only otherwise falls through to the right.
func PartialResults[S any, R any](m Monoid[R], p Term[S, R]) []Partial[S, R] {
	return appendPartials(m, nil, p, func(r R) R { return r })
}

func appendPartials[S any, R any](m Monoid[R], acc []Partial[S, R], p Term[S, R], f func(R) R) []Partial[S, R] {
	switch t := force(p).(type) {
	case resultTerm[S, R]:
		return append(acc, Partial[S, R]{Value: f(t.value), Next: Result(t.tail, m.Empty)})
	case resultPartTerm[S, R]:
		return append(acc, Partial[S, R]{Value: f(t.f(m.Empty)), Next: t.p})
	case choiceTerm[S, R]:
		acc = appendPartials(m, acc, t.p1, f)
		return appendPartials(m, acc, t.p2, f)
	case committedChoiceTerm[S, R]:
		if left := appendPartials(m, nil, t.p1, f); len(left) > 0 {
			return append(acc, left...)
		}
		return appendPartials(m, acc, t.p2, f)
	default:
		return acc
	}
}
