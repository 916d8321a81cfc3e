package span

import "golang.org/x/xerrors"

var (
	// ErrInvertedBounds is returned if the start of a span lies behind its end when indexing into a sequence.
	ErrInvertedBounds = xerrors.New("span start exceeds its end")

	// ErrOutOfBounds is returned if a span endpoint lies outside of the indexed sequence.
	ErrOutOfBounds = xerrors.New("span endpoint out of bounds")
)
