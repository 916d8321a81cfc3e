package span

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// region BoundType ////////////////////////////////////////////////////////////////////////////////////////////////////

// BoundType indicates whether an endpoint value of a span is part of the span
// itself ("included"), sits just outside of it ("excluded") or does not exist
// at all ("unbounded").
type BoundType uint8

const (
	// BoundTypeIncluded indicates that the endpoint value is considered part of the span ("inclusive").
	BoundTypeIncluded BoundType = iota

	// BoundTypeExcluded indicates that the endpoint value is not considered part of the span ("exclusive").
	BoundTypeExcluded

	// BoundTypeUnbounded indicates that the span extends forever in the endpoint's direction.
	BoundTypeUnbounded
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeIncluded",
	"BoundTypeExcluded",
	"BoundTypeUnbounded",
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Bound ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Bound is one endpoint of a span. Value carries the endpoint value and is
// meaningless if Type is BoundTypeUnbounded.
type Bound[T constraints.Ordered] struct {
	Type  BoundType
	Value T
}

// String returns a human-readable version of the Bound.
func (b Bound[T]) String() string {
	if b.Type == BoundTypeUnbounded {
		return "Bound(Unbounded)"
	}

	return fmt.Sprintf("Bound(%s, %v)", b.Type, b.Value)
}

// Within returns true if item lies between the given lower and upper Bounds.
// Every comparison against a Bound value has to hold for Within to return
// true, so an item that is unordered relative to an endpoint (a float NaN) is
// never within bounds.
func Within[T constraints.Ordered](lower Bound[T], upper Bound[T], item T) bool {
	switch lower.Type {
	case BoundTypeIncluded:
		if !(item >= lower.Value) {
			return false
		}
	case BoundTypeExcluded:
		if !(item > lower.Value) {
			return false
		}
	}

	switch upper.Type {
	case BoundTypeIncluded:
		return item <= upper.Value
	case BoundTypeExcluded:
		return item < upper.Value
	}

	return true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
