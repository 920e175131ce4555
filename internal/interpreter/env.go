package interpreter

import (
	"errors"
	"fmt"
	"log/slog"
)

// Field names one raw input of the simulation.
type Field string

const (
	FieldWidth    Field = "width"
	FieldHeight   Field = "height"
	FieldPosition Field = "position"
	FieldSequence Field = "sequence"
)

// Fields lists every input in form order.
var Fields = []Field{FieldWidth, FieldHeight, FieldPosition, FieldSequence}

// dependents lists what has to be checked again after a field changes.
var dependents = map[Field][]Field{
	FieldWidth:    {FieldWidth, FieldPosition},
	FieldHeight:   {FieldHeight, FieldPosition},
	FieldPosition: {FieldPosition},
	FieldSequence: {FieldSequence},
}

// Environment holds the raw inputs and what they validate to. Every Set
// re-checks the changed field and the fields depending on it, so shrinking
// the grid invalidates a starting pose that no longer fits.
type Environment struct {
	logger *slog.Logger

	raw  map[Field]string
	errs map[Field]error

	grid  Grid
	start Pose
	seq   Sequence
}

func NewEnvironment(logger *slog.Logger) *Environment {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Environment{
		logger: logger,
		raw:    make(map[Field]string),
		errs:   make(map[Field]error),
	}
	for _, f := range Fields {
		e.errs[f] = malformed(f, "", errors.New("required"))
	}
	return e
}

// Set stores raw as the value of f and revalidates f and its dependents.
func (e *Environment) Set(f Field, raw string) error {
	deps, ok := dependents[f]
	if !ok {
		return fmt.Errorf("unknown field %q", f)
	}
	e.raw[f] = raw
	for _, d := range deps {
		e.revalidate(d)
	}
	return e.errs[f]
}

// SetAll assigns several fields at once, in form order.
func (e *Environment) SetAll(values map[Field]string) {
	for _, f := range Fields {
		if v, ok := values[f]; ok {
			_ = e.Set(f, v)
		}
	}
}

func (e *Environment) revalidate(f Field) {
	var err error
	switch f {
	case FieldWidth:
		e.grid.Width, err = ParseDimension(f, e.raw[f])
	case FieldHeight:
		e.grid.Height, err = ParseDimension(f, e.raw[f])
	case FieldPosition:
		if e.gridOK() {
			e.start, err = ValidatePose(e.raw[f], e.grid)
		} else {
			_, err = ParsePose(e.raw[f])
		}
	case FieldSequence:
		e.seq, err = ParseSequence(e.raw[f])
	}
	e.errs[f] = err
	if err != nil {
		e.logFailure(err)
	}
}

func (e *Environment) logFailure(err error) {
	var fe *FieldError
	if !errors.As(err, &fe) {
		e.logger.Debug("field rejected", "error", err)
		return
	}
	attrs := []any{"field", fe.Field, "kind", fe.Kind, "value", fe.Value}
	switch fe.Kind {
	case KindXOutOfGrid, KindYOutOfGrid, KindOutOfRange:
		attrs = append(attrs, "coord", fe.Coord, "bound", fe.Bound)
	case KindMalformedInput:
		if fe.Column > 0 {
			attrs = append(attrs, "column", fe.Column)
		}
	}
	e.logger.Debug("field rejected", attrs...)
}

func (e *Environment) gridOK() bool {
	return e.errs[FieldWidth] == nil && e.errs[FieldHeight] == nil
}

// Raw returns the last value stored for f.
func (e *Environment) Raw(f Field) string { return e.raw[f] }

// Err returns the validation error of f, nil when it is valid.
func (e *Environment) Err(f Field) error { return e.errs[f] }

// Errors returns the failing fields only.
func (e *Environment) Errors() map[Field]error {
	out := make(map[Field]error)
	for f, err := range e.errs {
		if err != nil {
			out[f] = err
		}
	}
	return out
}

// Grid returns the current dimensions once width and height are both valid.
func (e *Environment) Grid() (Grid, bool) {
	return e.grid, e.gridOK()
}

// Start returns the validated starting pose.
func (e *Environment) Start() (Pose, bool) {
	return e.start, e.gridOK() && e.errs[FieldPosition] == nil
}

// Sequence returns a copy of the parsed move script.
func (e *Environment) Sequence() (Sequence, bool) {
	if e.errs[FieldSequence] != nil {
		return nil, false
	}
	return append(Sequence(nil), e.seq...), true
}

// Ready reports whether all fields are valid.
func (e *Environment) Ready() bool {
	for _, f := range Fields {
		if e.errs[f] != nil {
			return false
		}
	}
	return true
}

// Validate joins the errors of every failing field in form order. It is nil
// when the environment is ready.
func (e *Environment) Validate() error {
	var errs []error
	for _, f := range Fields {
		if err := e.errs[f]; err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Board returns the cells of the current grid with the starting pose marked.
// It is empty while the grid is invalid.
func (e *Environment) Board() []Cell {
	if !e.gridOK() {
		return nil
	}
	if p, ok := e.Start(); ok {
		return e.grid.Board(p)
	}
	return e.grid.Cells()
}
