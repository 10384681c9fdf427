package stepparse

// FeedAll feeds every token in xs into p in order, returning the final
// derivative. It is the building block every other batch feeder and every
// combinator that needs to "replay a pushback tail" is written in terms of.
func FeedAll[S any, R any](xs []S, p Term[S, R]) Term[S, R] {
	for _, x := range xs {
		p = Feed(x, p)
	}
	return p
}

// FeedString is FeedAll specialized to a string fed as a sequence of bytes,
// for the common case of a Term[byte, R] consuming textual input.
func FeedString[R any](s string, p Term[byte, R]) Term[byte, R] {
	for i := 0; i < len(s); i++ {
		p = Feed(s[i], p)
	}
	return p
}

// FeedListPrefix feeds xs into p one token at a time, stopping early as
// soon as p commits or fails, and returns the derivative together with the
// tokens of xs that were never fed. It does not call FeedEOF: a caller
// that wants finalization must still do that once no more tokens are
// coming.
func FeedListPrefix[S any, R any](xs []S, p Term[S, R]) (Term[S, R], []S) {
	for i, x := range xs {
		if isFailure(p) || HasResult(p) {
			return p, xs[i:]
		}
		p = Feed(x, p)
	}
	return p, nil
}

// FeedShortestPrefix feeds xs into p, stopping as soon as p has any result
// at all (even if it could still be extended), and returns the derivative
// together with the unconsumed rest of xs. This is "take the first
// successful parse", matching a non-greedy/committed-left reading of the
// grammar.
func FeedShortestPrefix[S any, R any](xs []S, p Term[S, R]) (Term[S, R], []S) {
	for i, x := range xs {
		if HasResult(p) || isFailure(p) {
			return p, xs[i:]
		}
		p = Feed(x, p)
	}
	return p, nil
}

// FeedLongestPrefix feeds every token in xs into p and only then calls
// FeedEOF, giving every greedy alternative the chance to consume as much of
// xs as it can before anything is forced to commit. It returns the
// finalized derivative together with the leftmost result's pushback tail:
// the suffix of xs the winning parse did not consume. On failure the whole
// of xs comes back as leftover.
func FeedLongestPrefix[S any, R any](xs []S, p Term[S, R]) (Term[S, R], []S) {
	final := FeedEOF(FeedAll(xs, p))
	if _, tail, ok := FirstResult(final); ok {
		return final, tail
	}
	return final, xs
}
