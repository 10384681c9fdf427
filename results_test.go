package stepparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasResultTrueForChoiceWithCommittedBranch(t *testing.T) {
	p := choiceTerm[byte, int]{p1: Result[byte, int](nil, 1), p2: Failure[byte, int]()}
	assert.True(t, HasResult[byte, int](p))
}

func TestHasResultFalseForPureMore(t *testing.T) {
	p := More(func(x byte) Term[byte, int] { return Result[byte, int](nil, 1) })
	assert.False(t, HasResult[byte, int](p))
}

func TestResultsAppliesResultPart(t *testing.T) {
	inner := Or[byte, int](More(func(byte) Term[byte, int] { return Failure[byte, int]() }), Result[byte, int](nil, 1))
	p := resultPart(func(n int) int { return n + 100 }, inner)
	assert.Equal(t, []int{101}, Results(p))
}

func TestResultsOrdersLeftToRight(t *testing.T) {
	p := choiceTerm[byte, int]{p1: Result[byte, int](nil, 1), p2: Result[byte, int](nil, 2)}
	assert.Equal(t, []int{1, 2}, Results[byte, int](p))
}

func TestFirstResultEmptyWhenNoResult(t *testing.T) {
	_, _, ok := FirstResult[byte, int](Failure[byte, int]())
	assert.False(t, ok)
}

func TestResultPrefixSplitsPendingPartial(t *testing.T) {
	inner := More(func(x byte) Term[byte, string] { return Result[byte, string](nil, string(x)) })
	p := resultPart(func(s string) string { return "pre" + s }, inner)
	prefix, rest, ok := ResultPrefix(StringMonoid, p)
	assert.True(t, ok)
	assert.Equal(t, "pre", prefix)
	// The continuation carries only the suffix still to come.
	v, _, ok := FirstResult(Feed(byte('x'), rest))
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestResultPrefixReplacesResultWithEmptyPlaceholder(t *testing.T) {
	p := Result[byte, string]([]byte("tl"), "done")
	prefix, rest, ok := ResultPrefix(StringMonoid, p)
	assert.True(t, ok)
	assert.Equal(t, "done", prefix)
	v, tail, ok := FirstResult(rest)
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, []byte("tl"), tail)
}

func TestPartialResultsPairsValueWithContinuation(t *testing.T) {
	inner := More(func(x byte) Term[byte, string] { return Result[byte, string](nil, string(x)) })
	p := choiceTerm[byte, string]{
		p1: Result[byte, string](nil, "whole"),
		p2: resultPart(func(s string) string { return "par" + s }, inner),
	}
	got := PartialResults[byte, string](StringMonoid, p)
	assert.Len(t, got, 2)
	assert.Equal(t, "whole", got[0].Value)
	assert.Equal(t, "par", got[1].Value)
}

func TestPartialResultsPrefersCommittedLeftBranch(t *testing.T) {
	p := committedChoiceTerm[byte, string]{
		p1: Result[byte, string](nil, "left"),
		p2: Result[byte, string](nil, "right"),
	}
	got := PartialResults[byte, string](StringMonoid, p)
	assert.Len(t, got, 1)
	assert.Equal(t, "left", got[0].Value)
}
