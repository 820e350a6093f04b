package options

import "fmt"

// MissingValueError reports a read of an option that was never assigned a
// value.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option --%s does not contain a value; use ValueSupplied to check whether one exists", e.Option)
}

// MissingDefaultError reports a read of an option that was never given a
// default value.
type MissingDefaultError struct {
	Option string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("option --%s does not contain a default value; use DefaultValueSupplied to check whether one exists", e.Option)
}
