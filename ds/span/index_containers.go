//go:build !nocontainers

package span

import (
	"bytes"

	"github.com/emirpasic/gods/lists/arraylist"
)

// region BufferBytes //////////////////////////////////////////////////////////////////////////////////////////////////

// BufferBytes returns the part of the unread contents of buf addressed by the
// given span. The result aliases the buffer's internal storage and is only
// valid until the next buffer modification. A span that does not fit the
// unread contents panics like the equivalent native slice expression.
func BufferBytes[R Index](buf *bytes.Buffer, spn R) []byte {
	// The full slice expression keeps spans from reaching the buffer's spare capacity.
	contents := buf.Bytes()

	return Slice(contents[:len(contents):len(contents)], spn)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Sublist //////////////////////////////////////////////////////////////////////////////////////////////////////

// Sublist returns a new list holding the part of list addressed by the given
// span. The returned list is independent of the original one. A span that
// does not fit the list panics like the equivalent native slice expression.
func Sublist[R Index](list *arraylist.List, spn R) *arraylist.List {
	return arraylist.New(Slice(list.Values(), spn)...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
