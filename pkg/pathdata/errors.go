package pathdata

import "errors"

var (
	ErrUnrecognizedDesignator = errors.New("unrecognized command")
	ErrArgumentCount          = errors.New("invalid argument count")
	ErrNotANumber             = errors.New("not a number")
	ErrNumberOutOfRange       = errors.New("number out of range")
	ErrInvalidFlagDigit       = errors.New("invalid flag (expected 0 or 1)")
)
