package stepparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultCollapsesResultPart(t *testing.T) {
	r := Result[byte, int](nil, 1)
	got := resultPart(func(n int) int { return n + 1 }, r)
	res, ok := got.(resultTerm[byte, int])
	assert.True(t, ok)
	assert.Equal(t, 2, res.value)
}

func TestResultPartNestsIntoOne(t *testing.T) {
	inner := More(func(x byte) Term[byte, int] { return Result[byte, int](nil, int(x)) })
	once := resultPart(func(n int) int { return n + 1 }, inner)
	twice := resultPart(func(n int) int { return n * 10 }, once)
	rp, ok := twice.(resultPartTerm[byte, int])
	assert.True(t, ok)
	assert.Equal(t, 30, rp.f(2)) // (2+1)*10
}

func TestFailureIsIdentityForOr(t *testing.T) {
	p := Result[byte, int](nil, 5)
	assert.Equal(t, p, Or(Failure[byte, int](), p))
	assert.Equal(t, p, Or(p, Failure[byte, int]()))
}
