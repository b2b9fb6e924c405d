package protocol

import "errors"

var (
	// ErrNoSpace is returned when an append would exceed the fixed
	// capacity of an argument buffer. The failing call writes nothing.
	ErrNoSpace = errors.New("no space left in argument buffer")

	// ErrValueRange is returned when a value does not fit the requested
	// fixed-width packing format. Values are never silently truncated.
	ErrValueRange = errors.New("value out of range for packing format")

	// ErrBadLength is returned by ParseResponse when the input is not
	// exactly ReportSize bytes, or declares more data than the argument
	// region can hold.
	ErrBadLength = errors.New("malformed response frame")
)
