package joy

import "fmt"

// NoAttributeError is returned when looking up an attribute that was never
// declared on a shape. An attribute that was declared with a null value is
// not an error, it merely renders as absent.
type NoAttributeError struct {
	Tag string
	Key string
}

func (e *NoAttributeError) Error() string {
	return fmt.Sprintf("<%s> has no attribute %q", e.Tag, e.Key)
}

// ValueError is the panic value raised by shape and transformation
// constructors on invalid arguments, such as attribute values that cannot be
// converted to text or repetition counts below one.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return e.Message }

// CompositionError is the panic value raised when transformations are
// composed in an unsupported way, such as joining a higher-order Repeat or
// Cycle into a sequence.
type CompositionError struct {
	Message string
}

func (e *CompositionError) Error() string { return e.Message }

func valuePanic(format string, args ...interface{}) {
	panic(&ValueError{fmt.Sprintf(format, args...)})
}

func compositionPanic(format string, args ...interface{}) {
	panic(&CompositionError{fmt.Sprintf(format, args...)})
}
