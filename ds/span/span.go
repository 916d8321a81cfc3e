// Package span provides plain value types describing contiguous spans over an
// ordered index type: Bounded (half-open), From (bounded below only) and
// Inclusive (closed on both ends).
//
// A span is an ordinary Go struct with exported fields. Copying one is a
// field-wise copy without aliasing concerns, two spans compare equal via ==
// exactly when their fields match, and every span type is usable as a map key.
// Spans are containers rather than iterators: the values of an integer span
// are consumed through the one-shot iterator forms created by
// NewBoundedIterator, NewFromIterator and NewInclusiveIterator.
//
// Spans over int additionally serve as slicing indexes for Go sequences via
// Slice, Substring, BufferBytes and Sublist, which convert the span to the
// equivalent native slice expression and leave all bounds enforcement to it.
package span

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// region Bounded //////////////////////////////////////////////////////////////////////////////////////////////////////

// Bounded is a span that includes its Start and excludes its End. No relation
// between the two fields is enforced: a Bounded with Start >= End simply
// contains no values.
type Bounded[T constraints.Ordered] struct {
	Start T
	End   T
}

// NewBounded creates a new Bounded span from start (inclusive) to end (exclusive).
func NewBounded[T constraints.Ordered](start T, end T) Bounded[T] {
	return Bounded[T]{
		Start: start,
		End:   end,
	}
}

// Contains returns true if item lies between Start (inclusive) and End
// (exclusive). Comparisons involving unordered values such as a float NaN are
// false, so a span touching NaN contains nothing.
func (b Bounded[T]) Contains(item T) bool {
	return Within(b.StartBound(), b.EndBound(), item)
}

// IsEmpty returns true if the span contains no values, which is the case
// exactly when Start >= End.
func (b Bounded[T]) IsEmpty() bool {
	return b.Start >= b.End
}

// StartBound returns the lower Bound of the span.
func (b Bounded[T]) StartBound() Bound[T] {
	return Bound[T]{Type: BoundTypeIncluded, Value: b.Start}
}

// EndBound returns the upper Bound of the span.
func (b Bounded[T]) EndBound() Bound[T] {
	return Bound[T]{Type: BoundTypeExcluded, Value: b.End}
}

// String returns a human-readable version of the Bounded span.
func (b Bounded[T]) String() string {
	return fmt.Sprintf("%v..%v", b.Start, b.End)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region From /////////////////////////////////////////////////////////////////////////////////////////////////////////

// From is a span that includes its Start and is unbounded above. A From span
// is never empty, so it intentionally carries no IsEmpty method.
type From[T constraints.Ordered] struct {
	Start T
}

// NewFrom creates a new From span starting at start (inclusive).
func NewFrom[T constraints.Ordered](start T) From[T] {
	return From[T]{
		Start: start,
	}
}

// Contains returns true if item is greater than or equal to Start.
// Comparisons involving unordered values such as a float NaN are false.
func (f From[T]) Contains(item T) bool {
	return Within(f.StartBound(), f.EndBound(), item)
}

// StartBound returns the lower Bound of the span.
func (f From[T]) StartBound() Bound[T] {
	return Bound[T]{Type: BoundTypeIncluded, Value: f.Start}
}

// EndBound returns the upper Bound of the span, which is always unbounded.
func (f From[T]) EndBound() Bound[T] {
	return Bound[T]{Type: BoundTypeUnbounded}
}

// String returns a human-readable version of the From span.
func (f From[T]) String() string {
	return fmt.Sprintf("%v..", f.Start)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Inclusive ////////////////////////////////////////////////////////////////////////////////////////////////////

// Inclusive is a span that includes both its Start and its End. No relation
// between the two fields is enforced: an Inclusive with Start > End simply
// contains no values.
type Inclusive[T constraints.Ordered] struct {
	Start T
	End   T
}

// NewInclusive creates a new Inclusive span from start to end, both inclusive.
func NewInclusive[T constraints.Ordered](start T, end T) Inclusive[T] {
	return Inclusive[T]{
		Start: start,
		End:   end,
	}
}

// Contains returns true if item lies between Start and End, both inclusive.
// Comparisons involving unordered values such as a float NaN are false.
func (i Inclusive[T]) Contains(item T) bool {
	return Within(i.StartBound(), i.EndBound(), item)
}

// IsEmpty returns true if the span contains no values. The condition is
// !(Start <= End) rather than Start > End: the two differ for unordered
// operands, where an Inclusive span touching NaN counts as empty while the
// Bounded equivalent does not.
func (i Inclusive[T]) IsEmpty() bool {
	return !(i.Start <= i.End)
}

// StartBound returns the lower Bound of the span.
func (i Inclusive[T]) StartBound() Bound[T] {
	return Bound[T]{Type: BoundTypeIncluded, Value: i.Start}
}

// EndBound returns the upper Bound of the span.
func (i Inclusive[T]) EndBound() Bound[T] {
	return Bound[T]{Type: BoundTypeIncluded, Value: i.End}
}

// String returns a human-readable version of the Inclusive span.
func (i Inclusive[T]) String() string {
	return fmt.Sprintf("%v..=%v", i.Start, i.End)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
