package options

// NewLocated declares an option like New and additionally binds location as a
// write-back target. Whenever the option is assigned a value with
// fromInitialParse set, the value is also copied to *location, so plain
// variables stay in sync with the option model during the first parse of the
// input. The option does not own the pointed-to variable and never reads it
// back. A nil location degrades to a plain option.
func NewLocated[T ValueType](name string, location *T) *TypedOption[T] {
	o := New[T](name)
	o.location = location
	return o
}
