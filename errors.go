package bezkit

import "errors"

var (
	// ErrSyntax is returned for malformed SVG path data.
	ErrSyntax = errors.New("bezkit: invalid path syntax")

	// ErrNoCurrentPoint is returned when path data draws before its first
	// move command.
	ErrNoCurrentPoint = errors.New("bezkit: drawing command without current point")
)
