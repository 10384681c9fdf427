package stp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowdev/stepparse"
)

func TestWhileMatchesZeroOrMore(t *testing.T) {
	p := While(func(b byte) bool { return b == 'a' })
	got, leftover := stepparse.FeedLongestPrefix([]byte("aaab"), p)
	v, _, ok := stepparse.FirstResult[byte, []byte](got)
	assert.True(t, ok)
	assert.Equal(t, []byte("aaa"), v)
	assert.Equal(t, []byte("b"), leftover)
}

func TestWhileMatchesEmptyOnNoInput(t *testing.T) {
	p := While(func(b byte) bool { return b == 'a' })
	got, _ := stepparse.FeedLongestPrefix([]byte("xyz"), p)
	v, _, ok := stepparse.FirstResult[byte, []byte](got)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestWhile1RequiresAtLeastOne(t *testing.T) {
	p := While1(func(b byte) bool { return b == 'a' })
	got, _ := stepparse.FeedLongestPrefix([]byte("xyz"), p)
	_, _, ok := stepparse.FirstResult[byte, []byte](got)
	assert.False(t, ok)
}

func TestMany0AccumulatesViaMonoid(t *testing.T) {
	digit := stepparse.Map(func(b byte) []byte { return []byte{b} }, Satisfy(func(b byte) bool { return b >= '0' && b <= '9' }))
	p := Many0(stepparse.SliceMonoid[byte](), digit)
	got, leftover := stepparse.FeedLongestPrefix([]byte("123x"), p)
	v, _, ok := stepparse.FirstResult[byte, []byte](got)
	assert.True(t, ok)
	assert.Equal(t, []byte("123"), v)
	assert.Equal(t, []byte("x"), leftover)
}

func TestManyTillStopsAtTerminator(t *testing.T) {
	letter := stepparse.Map(func(b byte) []byte { return []byte{b} }, Satisfy(func(b byte) bool { return b != ';' }))
	p := ManyTill(stepparse.SliceMonoid[byte](), letter, Token[byte](';'))
	v, tail, err := stepparse.Run([]byte("abc;d"), p)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
	assert.Equal(t, []byte("d"), tail)
}
