package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

// promptFields lets the user edit the four inputs. Each field is validated
// through env as it is typed, so a width change shows up on the pose field.
func promptFields(ctx context.Context, env *interpreter.Environment) error {
	values := make(map[interpreter.Field]*string, len(interpreter.Fields))
	for _, f := range interpreter.Fields {
		v := env.Raw(f)
		values[f] = &v
	}

	form := huh.NewForm(
		huh.NewGroup(
			fieldInput(env, interpreter.FieldWidth, "Width", "1 to 30 cells", values),
			fieldInput(env, interpreter.FieldHeight, "Height", "1 to 30 cells", values),
			fieldInput(env, interpreter.FieldPosition, "Starting position", "", values).
				DescriptionFunc(func() string {
					return positionHint(*values[interpreter.FieldWidth], *values[interpreter.FieldHeight], *values[interpreter.FieldPosition])
				}, []*string{values[interpreter.FieldWidth], values[interpreter.FieldHeight], values[interpreter.FieldPosition]}),
			fieldInput(env, interpreter.FieldSequence, "Move script", "A advance, G turn left, D turn right", values),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	final := make(map[interpreter.Field]string, len(values))
	for f, v := range values {
		final[f] = *v
	}
	env.SetAll(final)
	return nil
}

const positionHelp = "x,y,D with D one of N, E, S, W"

// positionHint describes the position field. It is recomputed whenever width,
// height or position change, so shrinking the grid flags the pose at once.
func positionHint(width, height, position string) string {
	w, errW := interpreter.ParseDimension(interpreter.FieldWidth, width)
	h, errH := interpreter.ParseDimension(interpreter.FieldHeight, height)
	if errW != nil || errH != nil {
		return positionHelp
	}
	if _, err := interpreter.ValidatePose(position, interpreter.Grid{Width: w, Height: h}); err != nil {
		return fmt.Sprintf("%s (%s)", positionHelp, interpreter.KindOf(err))
	}
	return positionHelp
}

func fieldInput(env *interpreter.Environment, f interpreter.Field, title, description string, values map[interpreter.Field]*string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Value(values[f]).
		Validate(func(s string) error {
			return env.Set(f, s)
		})
}
