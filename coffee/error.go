package coffee

import "errors"

// ErrInvalidArgument classifies errors caused by a value outside the accepted set.
var ErrInvalidArgument = errors.New("coffee: invalid argument")

// InvalidTypeError is returned when a coffee type is not one of the declared types.
type InvalidTypeError struct {
	// Value is the rejected input as it was received.
	Value string
}

func (e InvalidTypeError) Error() string {
	return "Invalid coffee type selected."
}

// Is reports whether target is ErrInvalidArgument.
func (e InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidArgument
}
