package stepparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func charToken(want byte) Term[byte, byte] {
	return More(func(x byte) Term[byte, byte] {
		if x == want {
			return Result[byte, byte](nil, x)
		}
		return Failure[byte, byte]()
	})
}

func TestMapAppliesAfterCommit(t *testing.T) {
	p := Map(func(b byte) int { return int(b) }, charToken('a'))
	got := Feed('a', p)
	res, ok := got.(resultTerm[byte, int])
	assert.True(t, ok)
	assert.Equal(t, int('a'), res.value)
}

func TestThenDiscardsLeftValue(t *testing.T) {
	p := Then[byte, byte, byte](charToken('a'), charToken('b'))
	got := Feed('b', Feed('a', p))
	res, ok := got.(resultTerm[byte, byte])
	assert.True(t, ok)
	assert.Equal(t, byte('b'), res.value)
}

func TestOrPrefersAlreadyCommittedBranch(t *testing.T) {
	p := Or[byte, int](Result[byte, int](nil, 1), Failure[byte, int]())
	assert.Equal(t, []int{1}, Results(p))
}

func TestCommittedOrPrunesRightOnceLeftHasResult(t *testing.T) {
	p := CommittedOr[byte, int](Result[byte, int](nil, 1), Result[byte, int](nil, 2))
	assert.Equal(t, []int{1}, Results(p))
}

func TestConcatStreamsPrefixViaResultPart(t *testing.T) {
	p := Concat(StringMonoid,
		Map(func(b byte) string { return string(b) }, charToken('a')),
		Map(func(b byte) string { return string(b) }, charToken('b')),
	)
	mid := Feed('a', p)
	_, streaming := mid.(resultPartTerm[byte, string])
	assert.True(t, streaming)
	final := Feed('b', mid)
	res, ok := final.(resultTerm[byte, string])
	assert.True(t, ok)
	assert.Equal(t, "ab", res.value)
}

func TestAndPairsBothResultsOnSameInput(t *testing.T) {
	pa := Map(func(b byte) int { return int(b) }, charToken('a'))
	pb := Map(func(b byte) bool { return b == 'a' }, charToken('a'))
	p := And[byte, int, bool](pa, pb)
	got := Feed('a', p)
	res, ok := got.(resultTerm[byte, Pair[int, bool]])
	assert.True(t, ok)
	assert.Equal(t, Pair[int, bool]{First: int('a'), Second: true}, res.value)
}

func TestLongestPrefersConsumingBranch(t *testing.T) {
	consuming := More(func(x byte) Term[byte, int] { return Result[byte, int](nil, 2) })
	settled := Result[byte, int](nil, 1)
	p := Longest[byte, int](choiceTerm[byte, int]{p1: settled, p2: consuming})
	cc, ok := p.(committedChoiceTerm[byte, int])
	assert.True(t, ok)
	_, consumingFirst := cc.p1.(moreTerm[byte, int])
	assert.True(t, consumingFirst)
}
