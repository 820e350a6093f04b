// Package options implements a typed option model: strongly typed option
// declarations kept behind a single type-erased handle and recovered without
// casts through a visitor. Options are plain value holders with no locking;
// declaring, parsing and reading them is expected to happen from a single
// goroutine.
package options

// Option is the type-erased handle to a declared option. Concrete values are
// reached either through the typed declaration that produced the handle or by
// dispatching a Visitor with Accept.
type Option interface {
	// Base returns the descriptor shared by every view of the option.
	// Mutating it through any view is visible through all of them.
	Base() *Descriptor

	// Accept calls exactly one method of v, the one matching the option's
	// concrete value type.
	Accept(v Visitor)
}

// Descriptor holds the identity and display metadata common to every option,
// independent of its value type.
type Descriptor struct {
	// Name is the long flag name, unique within a registry.
	Name string
	// Kind marks the concrete value type, fixed at construction.
	Kind Kind

	Help      string
	ShortName string

	// Markers interpreted by the consuming registry. The model keeps them
	// independent and validates no combination of them.
	Keep           bool
	Necessary      bool
	AllowOverride  bool
	HiddenFromHelp bool

	// OneOfError carries the most recent allowed-choice violation message.
	// Empty while every assigned value belonged to the configured set.
	OneOfError string
}

// Equal reports whether two descriptors declare the same option: name, kind,
// help, short name, Keep and Necessary all match. AllowOverride,
// HiddenFromHelp and OneOfError do not participate.
func (d *Descriptor) Equal(other *Descriptor) bool {
	return d.Name == other.Name &&
		d.Kind == other.Kind &&
		d.Help == other.Help &&
		d.ShortName == other.ShortName &&
		d.Keep == other.Keep &&
		d.Necessary == other.Necessary
}
