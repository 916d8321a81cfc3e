package span

import (
	"golang.org/x/xerrors"

	"github.com/axonova/span.go/safemath"
)

// region Index ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Index is the set of span types over int that can address a contiguous part
// of a Go sequence.
type Index interface {
	Bounded[int] | From[int] | Inclusive[int]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Slice / Substring ////////////////////////////////////////////////////////////////////////////////////////////

// Slice returns the part of s addressed by the given span. It evaluates the
// equivalent native slice expression, so the result shares its backing array
// with s and a span that does not fit s panics like the expression would.
func Slice[E any, R Index](s []E, spn R) []E {
	switch spn := any(spn).(type) {
	case Bounded[int]:
		return s[spn.Start:spn.End]
	case From[int]:
		return s[spn.Start:]
	case Inclusive[int]:
		return s[spn.Start : spn.End+1]
	default:
		panic("unknown span type")
	}
}

// Substring returns the part of s addressed by the given span. The span
// counts bytes, not runes. Like Slice it evaluates the equivalent native
// slice expression and panics on a span that does not fit s.
func Substring[R Index](s string, spn R) string {
	switch spn := any(spn).(type) {
	case Bounded[int]:
		return s[spn.Start:spn.End]
	case From[int]:
		return s[spn.Start:]
	case Inclusive[int]:
		return s[spn.Start : spn.End+1]
	default:
		panic("unknown span type")
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Bounds ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Bounds converts the given span to half-open offsets into a sequence of the
// given length, such that sequence[start:end] selects the values the span
// addresses. It is the error-returning counterpart to the panicking
// adapters: endpoints outside the sequence yield ErrOutOfBounds and a start
// behind the end yields ErrInvertedBounds.
func Bounds[R Index](spn R, length int) (start int, end int, err error) {
	switch spn := any(spn).(type) {
	case Bounded[int]:
		start, end = spn.Start, spn.End
	case From[int]:
		start, end = spn.Start, length
	case Inclusive[int]:
		start = spn.Start
		if end, err = safemath.SafeAdd(spn.End, 1); err != nil {
			return 0, 0, xerrors.Errorf("%w: %v", ErrOutOfBounds, err)
		}
	default:
		panic("unknown span type")
	}

	if start < 0 || start > length || end < 0 || end > length {
		return 0, 0, xerrors.Errorf("%w: %d..%d does not fit length %d", ErrOutOfBounds, start, end, length)
	}
	if start > end {
		return 0, 0, xerrors.Errorf("%w: %d..%d", ErrInvertedBounds, start, end)
	}

	return start, end, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
