package stepparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowdev/stepparse"
	"github.com/flowdev/stepparse/stp"
)

// TestMany0TrampolinesOverManyTokens confirms that stp.Many0's self-recursive
// definition expands one repetition at a time (via stepparse.Lazy) rather
// than eagerly building an infinitely deep Term the moment it is called.
// Without that, this test would never even reach FeedLongestPrefix: Many0(m,
// p) would already have overflowed the stack while being constructed, long
// before any of these several thousand tokens were fed in.
func TestMany0TrampolinesOverManyTokens(t *testing.T) {
	const n = 4000
	input := strings.Repeat("a", n)

	digit := stepparse.Map(func(b byte) []byte { return []byte{b} }, stp.Satisfy(func(b byte) bool { return b == 'a' }))
	p := stp.Many0(stepparse.SliceMonoid[byte](), digit)

	got, _ := stepparse.FeedLongestPrefix([]byte(input), p)
	v, _, ok := stepparse.FirstResult[byte, []byte](got)
	assert.True(t, ok)
	assert.Equal(t, []byte(input), v)
}

// TestManyTillTrampolinesOverManyTokens is ManyTill's counterpart: the
// terminator only ever shows up after several thousand repetitions of p.
func TestManyTillTrampolinesOverManyTokens(t *testing.T) {
	const n = 3000
	input := strings.Repeat("a", n) + ";"

	digit := stepparse.Map(func(b byte) []byte { return []byte{b} }, stp.Satisfy(func(b byte) bool { return b == 'a' }))
	end := stp.Token[byte](';')
	p := stp.ManyTill(stepparse.SliceMonoid[byte](), digit, end)

	got, _ := stepparse.FeedLongestPrefix([]byte(input), p)
	v, _, ok := stepparse.FirstResult[byte, []byte](got)
	assert.True(t, ok)
	assert.Equal(t, []byte(strings.Repeat("a", n)), v)
}
