package span

import (
	"golang.org/x/exp/constraints"
)

// region BoundedIterator //////////////////////////////////////////////////////////////////////////////////////////////

// BoundedIterator is a one-shot iterator over the values of a Bounded span,
// from Start (inclusive) up to End (exclusive) in steps of one.
type BoundedIterator[T constraints.Integer] struct {
	current T
	end     T
}

// NewBoundedIterator creates a new BoundedIterator over the values of the given span.
func NewBoundedIterator[T constraints.Integer](spn Bounded[T]) *BoundedIterator[T] {
	return &BoundedIterator[T]{
		current: spn.Start,
		end:     spn.End,
	}
}

// HasNext returns true if there is another value that can be requested via the Next method.
func (b *BoundedIterator[T]) HasNext() bool {
	return b.current < b.end
}

// Next returns the next value of the iterator and advances it. The method panics if there is no next value that can be
// retrieved (always use HasNext to check if another value can be requested).
func (b *BoundedIterator[T]) Next() T {
	if !b.HasNext() {
		panic("no next element found in iterator")
	}

	value := b.current
	b.current++

	return value
}

// Bounded returns the remaining values of the iterator as a Bounded span. Before the first call to Next this is the
// span the iterator was created from.
func (b *BoundedIterator[T]) Bounded() Bounded[T] {
	return Bounded[T]{
		Start: b.current,
		End:   b.end,
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FromIterator /////////////////////////////////////////////////////////////////////////////////////////////////

// FromIterator is an iterator over the values of a From span, from Start
// (inclusive) upwards in steps of one. It never runs out of values; once the
// maximum of the element type is yielded the iterator wraps around.
type FromIterator[T constraints.Integer] struct {
	current T
}

// NewFromIterator creates a new FromIterator over the values of the given span.
func NewFromIterator[T constraints.Integer](spn From[T]) *FromIterator[T] {
	return &FromIterator[T]{
		current: spn.Start,
	}
}

// HasNext always returns true.
func (f *FromIterator[T]) HasNext() bool {
	return true
}

// Next returns the next value of the iterator and advances it.
func (f *FromIterator[T]) Next() T {
	value := f.current
	f.current++

	return value
}

// From returns the remaining values of the iterator as a From span. Before the first call to Next this is the span the
// iterator was created from.
func (f *FromIterator[T]) From() From[T] {
	return From[T]{
		Start: f.current,
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region InclusiveIterator ////////////////////////////////////////////////////////////////////////////////////////////

// InclusiveIterator is a one-shot iterator over the values of an Inclusive
// span, from Start up to and including End in steps of one. It keeps a
// separate exhaustion flag so that spans ending at the maximum of the element
// type terminate instead of overflowing.
type InclusiveIterator[T constraints.Integer] struct {
	current   T
	end       T
	exhausted bool
}

// NewInclusiveIterator creates a new InclusiveIterator over the values of the given span.
func NewInclusiveIterator[T constraints.Integer](spn Inclusive[T]) *InclusiveIterator[T] {
	return &InclusiveIterator[T]{
		current: spn.Start,
		end:     spn.End,
	}
}

// HasNext returns true if there is another value that can be requested via the Next method.
func (i *InclusiveIterator[T]) HasNext() bool {
	return !i.exhausted && i.current <= i.end
}

// Next returns the next value of the iterator and advances it. The method panics if there is no next value that can be
// retrieved (always use HasNext to check if another value can be requested).
func (i *InclusiveIterator[T]) Next() T {
	if !i.HasNext() {
		panic("no next element found in iterator")
	}

	value := i.current
	if i.current == i.end {
		i.exhausted = true
	} else {
		i.current++
	}

	return value
}

// Inclusive returns the remaining values of the iterator as an Inclusive span. Before the first call to Next this is
// the span the iterator was created from. Once the iterator is exhausted both fields of the returned span hold the
// last yielded value, so the result no longer reflects the remaining (zero) values.
func (i *InclusiveIterator[T]) Inclusive() Inclusive[T] {
	return Inclusive[T]{
		Start: i.current,
		End:   i.end,
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
