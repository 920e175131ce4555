package interpreter

import "errors"

// ValidatePose parses raw and checks the pose against g. Only the upper
// bounds are checked here; the grammar already rules out negative values.
func ValidatePose(raw string, g Grid) (Pose, error) {
	p, err := ParsePose(raw)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			switch fe.Kind {
			case KindXOutOfGrid:
				fe.Bound = g.Width - 1
			case KindYOutOfGrid:
				fe.Bound = g.Height - 1
			}
		}
		return Pose{}, err
	}
	if p.X > g.Width-1 {
		return Pose{}, &FieldError{Field: FieldPosition, Kind: KindXOutOfGrid, Value: raw, Coord: p.X, Bound: g.Width - 1}
	}
	if p.Y > g.Height-1 {
		return Pose{}, &FieldError{Field: FieldPosition, Kind: KindYOutOfGrid, Value: raw, Coord: p.Y, Bound: g.Height - 1}
	}
	return p, nil
}
