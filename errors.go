package gluid

import "fmt"

var (
	errInvalidDataSize = &InvalidDataSizeError{}
)

// InvalidDataSizeError gets returned when data being decoded into an ID is
// not of a valid length for the representation expected.
type InvalidDataSizeError struct{}

func (e *InvalidDataSizeError) Error() string {
	return "data is not of a valid length for an ID"
}

// InvalidTypeError gets returned when a value of an unsupported type is
// scanned into an ID.
type InvalidTypeError struct {
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("scanned value of unsupported type [%T] into an ID", e.Value)
}
