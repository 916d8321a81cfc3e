//go:build !nocontainers

package span

import (
	"bytes"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/require"
)

// TestBufferBytes tests addressing parts of a byte buffer with spans.
func TestBufferBytes(t *testing.T) {
	buf := bytes.NewBufferString("hello world")

	require.Equal(t, []byte("hello"), BufferBytes(buf, NewBounded(0, 5)))
	require.Equal(t, []byte("world"), BufferBytes(buf, NewFrom(6)))
	require.Equal(t, []byte("hello"), BufferBytes(buf, NewInclusive(0, 4)))

	// Test that the result aliases the buffer's storage
	view := BufferBytes(buf, NewBounded(0, 5))
	view[0] = 'H'
	require.Equal(t, "Hello world", buf.String())

	require.Panics(t, func() { BufferBytes(buf, NewBounded(0, 12)) })
}

// TestSublist tests addressing parts of an ArrayList with spans.
func TestSublist(t *testing.T) {
	list := arraylist.New("a", "b", "c", "d", "e")

	// Test the three span shapes
	require.Equal(t, []interface{}{"b", "c"}, Sublist(list, NewBounded(1, 3)).Values())
	require.Equal(t, []interface{}{"c", "d", "e"}, Sublist(list, NewFrom(2)).Values())
	require.Equal(t, []interface{}{"b", "c", "d"}, Sublist(list, NewInclusive(1, 3)).Values())

	// Test that the result is independent of the input list
	sub := Sublist(list, NewBounded(1, 3))
	sub.Set(0, "x")

	value, exists := list.Get(1)
	require.True(t, exists)
	require.Equal(t, "b", value)

	require.Panics(t, func() { Sublist(list, NewBounded(0, 9)) })
	require.Panics(t, func() { Sublist(list, NewFrom(6)) })
}
