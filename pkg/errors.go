package pathedit

import "errors"

var (
	ErrIndexOutOfRange = errors.New("command index out of range")
	ErrNothingSelected = errors.New("no command selected")
	ErrEmptyPath       = errors.New("path has no extent")
	ErrNoSVGPaths      = errors.New("svg has no path elements")
)
