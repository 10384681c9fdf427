package stp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowdev/stepparse"
)

func TestOptionalSucceedsEitherWay(t *testing.T) {
	p := Optional[byte, byte](0, Token[byte]('a'))
	final, _ := stepparse.FeedLongestPrefix([]byte("a"), p)
	// Both branches stay live: the zero fallback (canonically leftmost) and
	// the actual match.
	rs := stepparse.Results[byte, byte](final)
	assert.Contains(t, rs, byte(0))
	assert.Contains(t, rs, byte('a'))

	p2 := Optional[byte, byte](0, Token[byte]('a'))
	final2, _ := stepparse.FeedLongestPrefix([]byte("b"), p2)
	// Only the fallback survives a mismatch; 'b' stays unconsumed.
	assert.Equal(t, []byte{0}, stepparse.Results[byte, byte](final2))
}

func TestOptionMaybeDistinguishesAbsence(t *testing.T) {
	p := OptionMaybe(Token[byte]('a'))
	v, _, err := stepparse.Run([]byte("a"), p)
	assert.NoError(t, err)
	if assert.NotNil(t, v) {
		assert.Equal(t, byte('a'), *v)
	}

	p2 := OptionMaybe(Token[byte]('a'))
	v2, _, err := stepparse.Run([]byte("b"), p2)
	assert.NoError(t, err)
	assert.Nil(t, v2)
}

func TestEofOnlyAtEndOfInput(t *testing.T) {
	p := Eof[byte](stepparse.StringMonoid)
	v, _, err := stepparse.Run(nil, p)
	assert.NoError(t, err)
	assert.Equal(t, "", v)

	p2 := Eof[byte](stepparse.StringMonoid)
	_, _, err = stepparse.Run([]byte("x"), p2)
	assert.Error(t, err)
}

func TestLookAheadNotFlipsSuccess(t *testing.T) {
	p := LookAheadNot(Token[byte]('a'))
	_, _, err := stepparse.Run([]byte("a"), p)
	assert.Error(t, err)

	p2 := LookAheadNot(Token[byte]('a'))
	_, tail, err := stepparse.Run([]byte("b"), p2)
	assert.NoError(t, err)
	assert.Equal(t, []byte("b"), tail)
}

func TestBetweenKeepsOnlyInner(t *testing.T) {
	p := Between(Token[byte]('('), While1(func(b byte) bool { return b != ')' }), Token[byte](')'))
	v, _, err := stepparse.Run([]byte("(hi)"), p)
	assert.NoError(t, err)
	assert.Equal(t, []byte("hi"), v)
}

func TestSepByCollectsSeparatedItems(t *testing.T) {
	item := stepparse.Map(func(b byte) []byte { return []byte{b} }, Satisfy(func(b byte) bool { return b >= 'a' && b <= 'z' }))
	p := SepBy1(stepparse.SliceMonoid[byte](), item, Token[byte](','))
	v, tail, err := stepparse.Run([]byte("a,b,c."), p)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
	assert.Equal(t, []byte("."), tail)
}

func TestSepByAllowsEmpty(t *testing.T) {
	item := stepparse.Map(func(b byte) []byte { return []byte{b} }, Satisfy(func(b byte) bool { return b >= 'a' && b <= 'z' }))
	p := SepBy(stepparse.SliceMonoid[byte](), item, Token[byte](','))
	v, tail, err := stepparse.Run([]byte("123"), p)
	assert.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, []byte("123"), tail)
}

func TestSkipDiscardsValue(t *testing.T) {
	p := Skip[byte, []byte](stepparse.StringMonoid, While1(func(b byte) bool { return b == ' ' }))
	v, tail, err := stepparse.Run([]byte("  x"), p)
	assert.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Equal(t, []byte("x"), tail)
}
