package pathdata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var arity = [...]int{
	ItemMove:                  2,
	ItemLine:                  2,
	ItemHorizontalLine:        1,
	ItemVerticalLine:          1,
	ItemCubicBezier:           6,
	ItemQuadraticBezier:       4,
	ItemSmoothCubicBezier:     4,
	ItemSmoothQuadraticBezier: 2,
	ItemEllipticalArc:         7,
	ItemClose:                 0,
}

// Arity returns how many argument tokens a command of kind t takes in path data.
// For an elliptical arc this includes the two flag digits.
func Arity(t ItemType) int {
	if !t.Valid() {
		return 0
	}

	return arity[t]
}

// Parse parses a single command chunk, e.g. "M10,20" or "a5 5 0 0 1 10 10".
// The letter selects the kind (case-insensitive) and the mode (upper case = absolute).
// Exactly one argument group is accepted per letter.
func Parse(chunk string) (Command, error) {
	s := strings.TrimSpace(chunk)
	if s == "" {
		return nil, fmt.Errorf("%w: empty command", ErrUnrecognizedDesignator)
	}

	r, size := utf8.DecodeRuneInString(s)
	kind, ok := ItemTypeFor(r)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnrecognizedDesignator, string(r))
	}

	// 1.0: close ignores anything after its letter
	if kind == ItemClose {
		return &Close{}, nil
	}

	mode := Mode{Absolute: unicode.IsUpper(r)}

	// 2.0: tokenize arguments
	tokens := splitArgs(s[size:])
	if len(tokens) != arity[kind] {
		return nil, fmt.Errorf("%w: %v expects %d arguments, got %d", ErrArgumentCount, kind, arity[kind], len(tokens))
	}

	// 3.0: convert
	if kind == ItemEllipticalArc {
		return parseArc(mode, tokens)
	}

	n, err := parseNumbers(kind, tokens)
	if err != nil {
		return nil, err
	}

	// 4.0: assign in table order
	switch kind {
	case ItemMove:
		return &Move{Mode: mode, X: n[0], Y: n[1]}, nil
	case ItemLine:
		return &Line{Mode: mode, EndX: n[0], EndY: n[1]}, nil
	case ItemHorizontalLine:
		return &HorizontalLine{Mode: mode, EndX: n[0]}, nil
	case ItemVerticalLine:
		return &VerticalLine{Mode: mode, EndY: n[0]}, nil
	case ItemCubicBezier:
		return &CubicBezier{
			Mode:      mode,
			Control1X: n[0], Control1Y: n[1],
			Control2X: n[2], Control2Y: n[3],
			EndX: n[4], EndY: n[5],
		}, nil
	case ItemQuadraticBezier:
		return &QuadraticBezier{Mode: mode, ControlX: n[0], ControlY: n[1], EndX: n[2], EndY: n[3]}, nil
	case ItemSmoothCubicBezier:
		return &SmoothCubicBezier{Mode: mode, Control2X: n[0], Control2Y: n[1], EndX: n[2], EndY: n[3]}, nil
	case ItemSmoothQuadraticBezier:
		return &SmoothQuadraticBezier{Mode: mode, EndX: n[0], EndY: n[1]}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnrecognizedDesignator, string(r))
}

// parseArc reads SizeX, SizeY, RotationAngle, large-arc flag, sweep flag, EndX, EndY.
func parseArc(mode Mode, tokens []string) (Command, error) {
	large, err := parseFlag(tokens[3])
	if err != nil {
		return nil, err
	}

	sweep, err := parseFlag(tokens[4])
	if err != nil {
		return nil, err
	}

	n, err := parseNumbers(ItemEllipticalArc, []string{tokens[0], tokens[1], tokens[2], tokens[5], tokens[6]})
	if err != nil {
		return nil, err
	}

	return &EllipticalArc{
		Mode:                     mode,
		SizeX:                    n[0],
		SizeY:                    n[1],
		RotationAngle:            n[2],
		IsLargeArc:               large,
		IsPositiveSweepDirection: sweep,
		EndX:                     n[3],
		EndY:                     n[4],
	}, nil
}

func parseNumbers(kind ItemType, tokens []string) ([]float64, error) {
	result := make([]float64, len(tokens))
	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %v argument %d is %q", ErrNumberOutOfRange, kind, i+1, token)
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %v argument %d is %q", ErrNotANumber, kind, i+1, token)
		}

		result[i] = v
	}

	return result, nil
}

func parseFlag(token string) (bool, error) {
	switch token {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}

	return false, fmt.Errorf("%w: %v got %q", ErrInvalidFlagDigit, ItemEllipticalArc, token)
}

// ParseAll parses every chunk of data in order.
// Parsing stops at the first malformed chunk: the commands parsed before it are
// returned together with the error.
func ParseAll(data string) (Path, error) {
	var result Path
	for chunk := range Chunks(data) {
		cmd, err := Parse(chunk)
		if err != nil {
			return result, fmt.Errorf("command %d (%q): %w", len(result)+1, strings.TrimSpace(chunk), err)
		}

		result = append(result, cmd)
	}

	return result, nil
}
