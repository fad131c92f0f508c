package wordfilter

import (
	"fmt"
)

// InvalidFormatError is returned when a dictionary blob violates the FCF3
// container format.
type InvalidFormatError struct {
	Offset  uint64
	Field   string
	Problem string
}

// Error fulfills the error interface.
func (err InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid dictionary at/near byte offset %d: %s: %s", err.Offset, err.Field, err.Problem)
}

var _ error = InvalidFormatError{}

// InvalidArgumentError is returned when a caller-provided argument or option
// cannot be used.
type InvalidArgumentError struct {
	Name    string
	Problem string
}

// Error fulfills the error interface.
func (err InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", err.Name, err.Problem)
}

var _ error = InvalidArgumentError{}
