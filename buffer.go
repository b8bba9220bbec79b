package polish

import "io"

// Buffer is a cursor over a rune source with unlimited pushback. Pushed
// runes are returned before anything else is read from the source.
type Buffer struct {
	stack []rune
	src   io.RuneReader
}

func NewBuffer(src io.RuneReader) *Buffer {
	return &Buffer{src: src}
}

// Pop consumes the next rune. ok is false once the source is exhausted; a
// read error from the source counts as exhaustion.
func (b *Buffer) Pop() (r rune, ok bool) {
	if n := len(b.stack); n > 0 {
		r = b.stack[n-1]
		b.stack = b.stack[:n-1]
		return r, true
	}
	if b.src == nil {
		return 0, false
	}
	r, _, err := b.src.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

// Push returns r to the front of the stream.
func (b *Buffer) Push(r rune) {
	b.stack = append(b.stack, r)
}

func (b *Buffer) Peek() (rune, bool) {
	r, ok := b.Pop()
	if ok {
		b.Push(r)
	}
	return r, ok
}

func (b *Buffer) IsEmpty() bool {
	_, ok := b.Peek()
	return !ok
}

// TakeUntil consumes runes until stop holds for the next one, which is left
// in the buffer, or until the source is exhausted.
func (b *Buffer) TakeUntil(stop func(rune) bool) []rune {
	var taken []rune
	for {
		r, ok := b.Pop()
		if !ok {
			return taken
		}
		if stop(r) {
			b.Push(r)
			return taken
		}
		taken = append(taken, r)
	}
}
