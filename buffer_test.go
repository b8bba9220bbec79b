package polish

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(s string) *Buffer {
	return NewBuffer(strings.NewReader(s))
}

func TestBufferPop(t *testing.T) {
	b := newTestBuffer("ab")
	r, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	r, ok = b.Pop()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	_, ok = b.Pop()
	assert.False(t, ok)
	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestBufferPush(t *testing.T) {
	b := newTestBuffer("c")
	b.Push('b')
	b.Push('a')
	assert.Equal(t, "abc", string(b.TakeUntil(func(rune) bool { return false })))
	assert.True(t, b.IsEmpty())

	// pushing onto an exhausted buffer makes it non-empty again
	b.Push('z')
	assert.False(t, b.IsEmpty())
	r, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, 'z', r)
}

func TestBufferPeek(t *testing.T) {
	b := newTestBuffer("xy")
	for i := 0; i < 3; i++ {
		r, ok := b.Peek()
		require.True(t, ok)
		assert.Equal(t, 'x', r)
	}
	b.Pop()
	r, _ := b.Peek()
	assert.Equal(t, 'y', r)
	b.Pop()
	_, ok := b.Peek()
	assert.False(t, ok)
}

func TestBufferIsEmpty(t *testing.T) {
	assert.True(t, newTestBuffer("").IsEmpty())
	assert.True(t, NewBuffer(nil).IsEmpty())

	b := newTestBuffer("é")
	assert.False(t, b.IsEmpty())
	r, _ := b.Pop()
	assert.Equal(t, 'é', r)
	assert.True(t, b.IsEmpty())
}

func TestBufferTakeUntil(t *testing.T) {
	b := newTestBuffer("abc def")
	assert.Equal(t, "abc", string(b.TakeUntil(unicode.IsSpace)))

	// the rune that stopped the run is still there
	r, _ := b.Peek()
	assert.Equal(t, ' ', r)
	assert.Empty(t, b.TakeUntil(unicode.IsSpace))

	b.Pop()
	assert.Equal(t, "def", string(b.TakeUntil(unicode.IsSpace)))
	assert.True(t, b.IsEmpty())
	assert.Empty(t, b.TakeUntil(unicode.IsSpace))
}
