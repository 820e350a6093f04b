package options

import (
	"slices"

	"github.com/optmodel/optmodel/internal/optional"
)

// Compile-time checks that every supported instantiation satisfies Option.
var (
	_ Option = (*TypedOption[uint32])(nil)
	_ Option = (*TypedOption[uint64])(nil)
	_ Option = (*TypedOption[int32])(nil)
	_ Option = (*TypedOption[int64])(nil)
	_ Option = (*TypedOption[float64])(nil)
	_ Option = (*TypedOption[bool])(nil)
	_ Option = (*TypedOption[string])(nil)
	_ Option = (*TypedOption[[]string])(nil)
)

// TypedOption is an option declaration holding values of type T. The assigned
// value and the default value are tracked independently: either, both or
// neither may be present at any time.
type TypedOption[T ValueType] struct {
	Descriptor

	value        optional.Value[T]
	defaultValue optional.Value[T]
	choices      []T
	location     *T
}

// New declares an option named name holding values of type T. The new option
// has no value, no default and no allowed-choice set.
func New[T ValueType](name string) *TypedOption[T] {
	return &TypedOption[T]{
		Descriptor:   Descriptor{Name: name, Kind: kindOf[T]()},
		value:        optional.None[T](),
		defaultValue: optional.None[T](),
	}
}

// Base returns the type-erased descriptor of the option.
func (o *TypedOption[T]) Base() *Descriptor {
	return &o.Descriptor
}

// Accept dispatches to the single visitor method matching T. The switch is
// exhaustive over the closed set of supported value types.
func (o *TypedOption[T]) Accept(v Visitor) {
	switch opt := any(o).(type) {
	case *TypedOption[uint32]:
		v.VisitUint32(opt)
	case *TypedOption[uint64]:
		v.VisitUint64(opt)
	case *TypedOption[int32]:
		v.VisitInt32(opt)
	case *TypedOption[int64]:
		v.VisitInt64(opt)
	case *TypedOption[float64]:
		v.VisitFloat64(opt)
	case *TypedOption[bool]:
		v.VisitBool(opt)
	case *TypedOption[string]:
		v.VisitString(opt)
	case *TypedOption[[]string]:
		v.VisitStringSlice(opt)
	}
}

// WithHelp sets the help text shown for the option.
func (o *TypedOption[T]) WithHelp(help string) *TypedOption[T] {
	o.Help = help
	return o
}

// WithShortName sets a single-character flag alias.
func (o *TypedOption[T]) WithShortName(short string) *TypedOption[T] {
	o.ShortName = short
	return o
}

// WithKeep marks the option to be kept by the consuming registry.
func (o *TypedOption[T]) WithKeep() *TypedOption[T] {
	o.Keep = true
	return o
}

// WithNecessary marks the option as required for its group to take effect.
func (o *TypedOption[T]) WithNecessary() *TypedOption[T] {
	o.Necessary = true
	return o
}

// WithAllowOverride permits later sources to override the supplied value.
func (o *TypedOption[T]) WithAllowOverride() *TypedOption[T] {
	o.AllowOverride = true
	return o
}

// WithHiddenFromHelp excludes the option from generated help output.
func (o *TypedOption[T]) WithHiddenFromHelp() *TypedOption[T] {
	o.HiddenFromHelp = true
	return o
}

// WithDefault stores v as the option's default value.
func (o *TypedOption[T]) WithDefault(v T) *TypedOption[T] {
	o.SetDefaultValue(v)
	return o
}

// WithOneOf restricts the option to the given set of allowed values.
func (o *TypedOption[T]) WithOneOf(choices ...T) *TypedOption[T] {
	o.SetOneOf(choices...)
	return o
}

// SetValue assigns v to the option, replacing any previous value.
// fromInitialParse reports whether the assignment comes from the first pass
// of a parser over its input; only those assignments propagate to a bound
// location. If an allowed-choice set is configured and v is not a member,
// the violation is recorded in OneOfError and the value is stored anyway.
func (o *TypedOption[T]) SetValue(v T, fromInitialParse bool) *TypedOption[T] {
	o.value = optional.Some(v)
	if o.location != nil && fromInitialParse {
		*o.location = v
	}
	if len(o.choices) > 0 && !containsValue(o.choices, v) {
		o.OneOfError = invalidChoiceError(o.Name, v, o.choices)
	}
	return o
}

// Value returns the assigned value, or a MissingValueError when none was ever
// assigned. A stored zero value is still a value.
func (o *TypedOption[T]) Value() (T, error) {
	v, ok := o.value.Get()
	if !ok {
		return v, &MissingValueError{Option: o.Name}
	}
	return v, nil
}

// ValueSupplied reports whether the option was assigned a value.
func (o *TypedOption[T]) ValueSupplied() bool {
	return o.value.Present()
}

// ValueOrDefault returns the assigned value when present, then the default
// value when present, and the zero value of T otherwise.
func (o *TypedOption[T]) ValueOrDefault() T {
	return o.value.GetOrDefault(o.defaultValue.Raw())
}

// SetDefaultValue stores v as the option's default, replacing any previous
// default. The assigned value is not touched.
func (o *TypedOption[T]) SetDefaultValue(v T) {
	o.defaultValue = optional.Some(v)
}

// DefaultValue returns the default value, or a MissingDefaultError when none
// was configured.
func (o *TypedOption[T]) DefaultValue() (T, error) {
	v, ok := o.defaultValue.Get()
	if !ok {
		return v, &MissingDefaultError{Option: o.Name}
	}
	return v, nil
}

// DefaultValueSupplied reports whether a default value was configured.
func (o *TypedOption[T]) DefaultValueSupplied() bool {
	return o.defaultValue.Present()
}

// SetOneOf replaces the allowed-choice set with the given values, dropping
// duplicates while preserving first-occurrence order. Values assigned before
// the call are not re-validated.
func (o *TypedOption[T]) SetOneOf(choices ...T) {
	o.choices = nil
	for _, choice := range choices {
		if !containsValue(o.choices, choice) {
			o.choices = append(o.choices, choice)
		}
	}
}

// OneOf returns a copy of the allowed-choice set in insertion order.
func (o *TypedOption[T]) OneOf() []T {
	return slices.Clone(o.choices)
}

// Equal reports whether both declarations describe the same option with the
// same default: the descriptors must be Equal and the defaults either both
// absent or both present and equal. The assigned value and the
// allowed-choice set do not participate.
func (o *TypedOption[T]) Equal(other *TypedOption[T]) bool {
	if !o.Descriptor.Equal(&other.Descriptor) {
		return false
	}

	left, leftPresent := o.defaultValue.Get()
	right, rightPresent := other.defaultValue.Get()
	if leftPresent != rightPresent {
		return false
	}
	return !leftPresent || valueEqual(left, right)
}
