package interpreter

import (
	"errors"
	"fmt"
)

// Kind classifies a validation or run-time failure.
type Kind string

const (
	KindMalformedInput Kind = "MALFORMED_INPUT"
	KindOutOfRange     Kind = "OUT_OF_RANGE"
	KindXOutOfGrid     Kind = "X_OUT_OF_GRID"
	KindYOutOfGrid     Kind = "Y_OUT_OF_GRID"
	KindIllegalMove    Kind = "ILLEGAL_MOVE"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrOutOfRange     = errors.New("value out of range")
	ErrXOutOfGrid     = errors.New("x is out of grid")
	ErrYOutOfGrid     = errors.New("y is out of grid")
	ErrIllegalMove    = errors.New("illegal move")

	// ErrRunConsumed is yielded when a finished run is ranged over again.
	ErrRunConsumed = errors.New("run already consumed")
	// ErrNotReady is returned when a run is requested while a field is invalid.
	ErrNotReady = errors.New("environment not ready")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMalformedInput:
		return ErrMalformedInput
	case KindOutOfRange:
		return ErrOutOfRange
	case KindXOutOfGrid:
		return ErrXOutOfGrid
	case KindYOutOfGrid:
		return ErrYOutOfGrid
	case KindIllegalMove:
		return ErrIllegalMove
	}
	return nil
}

// FieldError reports why a raw field value was rejected. Coord and Bound are
// set for out-of-grid and out-of-range failures, Column for script failures.
type FieldError struct {
	Field  Field
	Kind   Kind
	Value  string
	Coord  int
	Bound  int
	Column int
	Cause  error
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case KindXOutOfGrid, KindYOutOfGrid:
		return fmt.Sprintf("%s: %s: %q (coordinate %d, max %d)", e.Field, e.Kind, e.Value, e.Coord, e.Bound)
	case KindOutOfRange:
		return fmt.Sprintf("%s: %s: %q (allowed %d..%d)", e.Field, e.Kind, e.Value, MinDimension, MaxDimension)
	}
	if e.Column > 0 {
		return fmt.Sprintf("%s: %s: %q (column %d)", e.Field, e.Kind, e.Value, e.Column)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %q: %v", e.Field, e.Kind, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %q", e.Field, e.Kind, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Cause }

// Is matches the sentinel error of the same kind.
func (e *FieldError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// IllegalMoveError is reported when a run meets a command outside the
// A/G/D alphabet. Pose is the last valid pose of the agent.
type IllegalMoveError struct {
	Step    int
	Command Command
	Pose    Pose
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s: step %d: command %q at %s", KindIllegalMove, e.Step, rune(e.Command), e.Pose)
}

func (e *IllegalMoveError) Is(target error) bool { return target == ErrIllegalMove }

// KindOf extracts the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	var ime *IllegalMoveError
	if errors.As(err, &ime) {
		return KindIllegalMove
	}
	return ""
}
