package loader

import "errors"

var (
	// ErrBadTuple indicates coordinate text not of the form "(n1, n2, ...)"
	// with one to four non-negative integers.
	ErrBadTuple = errors.New("loader: malformed coordinate tuple")

	// ErrBadDescriptor indicates a maze descriptor that cannot describe a maze:
	// unreadable input, missing fields or values on undeclared axes.
	ErrBadDescriptor = errors.New("loader: invalid maze descriptor")
)
