// Package either provides the two-armed result type the evaluator returns
// from every call: a computed value, or a missing-dimension set that must
// be closed before evaluation can proceed (spec.md §4.3). Grounded on
// original_source/src/either.rs's Either<L, R>.
package either

// Either holds exactly one of Left or Right.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a successfully computed value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right wraps a missing-dimension (or otherwise deferred) result.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsLeft reports whether this holds a Left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether this holds a Right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Unpack returns (left, right, isRight) for callers that want to switch on
// the tag directly rather than calling Left or Right.
func (e Either[L, R]) Unpack() (L, R, bool) { return e.left, e.right, e.isRight }

// Left returns the Left payload and true, or the zero value and false.
func (e Either[L, R]) Left() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the Right payload and true, or the zero value and false.
func (e Either[L, R]) Right() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}
