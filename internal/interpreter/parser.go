package interpreter

import (
	"errors"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Dimension bounds accepted for width and height.
const (
	MinDimension = 1
	MaxDimension = 30
)

// No whitespace rule: the form fields are matched exactly.
var fieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dir", Pattern: `[NEWSnews]`},
	{Name: "Punct", Pattern: `,`},
})

// PoseLiteral is the "x,y,D" form of a starting pose. Coordinates are kept
// as digit strings so leading zeros read as decimal.
type PoseLiteral struct {
	X   string `parser:"@Int ','"`
	Y   string `parser:"@Int ','"`
	Dir string `parser:"@Dir"`
}

type dimensionLiteral struct {
	Value string `parser:"@Int"`
}

var (
	poseParser      = participle.MustBuild[PoseLiteral](participle.Lexer(fieldLexer))
	dimensionParser = participle.MustBuild[dimensionLiteral](participle.Lexer(fieldLexer))
)

// ParsePose parses raw without checking it against any grid.
func ParsePose(raw string) (Pose, error) {
	lit, err := poseParser.ParseString(string(FieldPosition), raw)
	if err != nil {
		return Pose{}, malformed(FieldPosition, raw, err)
	}
	x, err := coordinate(raw, lit.X, KindXOutOfGrid)
	if err != nil {
		return Pose{}, err
	}
	y, err := coordinate(raw, lit.Y, KindYOutOfGrid)
	if err != nil {
		return Pose{}, err
	}
	dir, err := ParseDirection(lit.Dir)
	if err != nil {
		return Pose{}, malformed(FieldPosition, raw, err)
	}
	return Pose{X: x, Y: y, Direction: dir}, nil
}

// ParseDimension parses a width or height field: digits only, within
// [MinDimension, MaxDimension].
func ParseDimension(field Field, raw string) (int, error) {
	lit, err := dimensionParser.ParseString(string(field), raw)
	if err != nil {
		return 0, malformed(field, raw, err)
	}
	n, err := strconv.Atoi(lit.Value)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &FieldError{Field: field, Kind: KindOutOfRange, Value: raw, Coord: n, Bound: MaxDimension, Cause: err}
	}
	if err != nil {
		return 0, malformed(field, raw, err)
	}
	if n < MinDimension || n > MaxDimension {
		return 0, &FieldError{Field: field, Kind: KindOutOfRange, Value: raw, Coord: n, Bound: MaxDimension}
	}
	return n, nil
}

// coordinate converts one digit string of a pose. A value too large for an
// int lies outside every grid, so it is reported as out of grid against the
// largest coordinate any grid allows.
func coordinate(raw, digits string, kind Kind) (int, error) {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &FieldError{Field: FieldPosition, Kind: kind, Value: raw, Coord: n, Bound: MaxDimension - 1, Cause: err}
	}
	if err != nil {
		return 0, malformed(FieldPosition, raw, err)
	}
	return n, nil
}

func malformed(field Field, raw string, cause error) *FieldError {
	return &FieldError{Field: field, Kind: KindMalformedInput, Value: raw, Cause: cause}
}
